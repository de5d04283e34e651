package impl

import (
	"context"
	"testing"

	"afyalink/config"
	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/repository"
	"afyalink/internal/domain/service"
	mockRepo "afyalink/internal/mocks/repository"
	mockSvc "afyalink/internal/mocks/service"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, adminEmails []string) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config: &config.Config{
			Auth: &config.AuthConfig{AdminEmails: adminEmails},
		},
		Logger: testLogger(),
	})

	return svc, userRepo, hasher, tokenService
}

func TestUserService_RegisterUser_AssignsCustomerRole(t *testing.T) {
	svc, userRepo, hasher, _ := newUserService(t, []string{"pharmacist@afyalink.co.ke"})

	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "jane@example.com").
		Return(nil, repository.ErrUserNotFound)

	hasher.EXPECT().
		Hash("correct horse battery").
		Return("$2a$10$hash", nil)

	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	out, err := svc.RegisterUser(ctx, usecase.RegisterUserInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
	assert.Equal(t, "$2a$10$hash", out.User.PasswordHash)
}

func TestUserService_RegisterUser_AllowListGrantsAdmin(t *testing.T) {
	svc, userRepo, hasher, _ := newUserService(t, []string{"Pharmacist@Afyalink.co.ke"})

	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "pharmacist@afyalink.co.ke").
		Return(nil, repository.ErrUserNotFound)

	hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("$2a$10$hash", nil)

	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	// Allow-list matching ignores case on both sides.
	out, err := svc.RegisterUser(ctx, usecase.RegisterUserInput{
		Name:     "Pharmacist",
		Email:    "PHARMACIST@afyalink.co.ke",
		Password: "long enough password",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestUserService_RegisterUser_AdminLookAlikeEmailStaysCustomer(t *testing.T) {
	svc, userRepo, hasher, _ := newUserService(t, []string{"pharmacist@afyalink.co.ke"})

	ctx := context.Background()

	// An email merely containing "admin" gets no special treatment; only
	// exact allow-list membership grants the role.
	userRepo.EXPECT().
		FindByEmail(ctx, "admin.wannabe@example.com").
		Return(nil, repository.ErrUserNotFound)

	hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("$2a$10$hash", nil)

	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	out, err := svc.RegisterUser(ctx, usecase.RegisterUserInput{
		Name:     "Wannabe",
		Email:    "admin.wannabe@example.com",
		Password: "long enough password",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, _ := newUserService(t, nil)

	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "jane@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "jane@example.com"}, nil)

	_, err := svc.RegisterUser(ctx, usecase.RegisterUserInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "long enough password",
	})
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_ShortPasswordRejected(t *testing.T) {
	svc, _, _, _ := newUserService(t, nil)

	_, err := svc.RegisterUser(context.Background(), usecase.RegisterUserInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "short",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	svc, userRepo, hasher, tokenService := newUserService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindByEmail(ctx, "jane@example.com").
		Return(&entity.User{ID: userID, Email: "jane@example.com", PasswordHash: "$2a$10$hash", Role: entity.RoleCustomer}, nil)

	hasher.EXPECT().
		Check("correct horse battery", "$2a$10$hash").
		Return(true)

	tokenService.EXPECT().
		GenerateTokens(userID, []string{"customer"}).
		Return("access", "refresh", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "Jane@Example.com", Password: "correct horse battery"})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, hasher, _ := newUserService(t, nil)

	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "jane@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "$2a$10$hash"}, nil)

	hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "jane@example.com", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	svc, userRepo, _, _ := newUserService(t, nil)

	ctx := context.Background()

	userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Refresh_Success(t *testing.T) {
	svc, userRepo, _, tokenService := newUserService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleCustomer}, nil)

	tokenService.EXPECT().
		GenerateTokens(userID, []string{"customer"}).
		Return("new-access", "new-refresh", nil)

	out, err := svc.Refresh(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	svc, _, _, tokenService := newUserService(t, nil)

	tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, assert.AnError)

	_, err := svc.Refresh(context.Background(), "garbage")
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, userRepo, _, _ := newUserService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
