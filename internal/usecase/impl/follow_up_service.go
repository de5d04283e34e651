package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	deliverycontext "afyalink/internal/delivery/context"
	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/repository"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// followUpCandidateScanLimit bounds how many recent orders feed the
// candidate aggregation.
const followUpCandidateScanLimit = 200

// followUpService implements the FollowUpUsecase interface.
type followUpService struct {
	followUpRepo repository.FollowUpRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// FollowUpServiceParams holds dependencies for FollowUpService, injected by Fx.
type FollowUpServiceParams struct {
	fx.In

	FollowUpRepo repository.FollowUpRepository
	OrderRepo    repository.OrderRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewFollowUpService is the constructor for followUpService.
func NewFollowUpService(params FollowUpServiceParams) usecase.FollowUpUsecase {
	return &followUpService{
		followUpRepo: params.FollowUpRepo,
		orderRepo:    params.OrderRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *followUpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCandidates aggregates recent orders into per-customer rows: last
// order date, lifetime spend, order count. Computed on request; the admin
// screen refreshes by asking again, nothing is pushed.
func (srv *followUpService) ListCandidates(ctx context.Context, limit int) ([]*entity.FollowUpCandidate, error) {
	orders, err := srv.orderRepo.ListRecent(ctx, followUpCandidateScanLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	byUser := make(map[uuid.UUID]*entity.FollowUpCandidate)
	for _, order := range orders {
		candidate, ok := byUser[order.UserID]
		if !ok {
			candidate = &entity.FollowUpCandidate{UserID: order.UserID}
			byUser[order.UserID] = candidate
		}
		candidate.OrderCount++
		candidate.TotalSpentCents += order.TotalCents
		if order.CreatedAt.After(candidate.LastOrderAt) {
			candidate.LastOrderAt = order.CreatedAt
		}
	}

	candidates := make([]*entity.FollowUpCandidate, 0, len(byUser))
	for _, candidate := range byUser {
		user, err := srv.userRepo.FindByID(ctx, candidate.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Account deleted since ordering; skip the row.
				continue
			}

			return nil, errors.Wrap(err, "failed to find user")
		}
		candidate.Email = user.Email
		candidate.Name = user.Name
		candidates = append(candidates, candidate)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].LastOrderAt.After(candidates[j].LastOrderAt)
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

// SendFollowUp records a follow-up message for a customer.
func (srv *followUpService) SendFollowUp(ctx context.Context, input usecase.SendFollowUpInput) (*entity.FollowUp, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	followUp := &entity.FollowUp{
		ID:      uuid.NewString(),
		UserID:  input.UserID,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := srv.followUpRepo.Create(ctx, followUp); err != nil {
		return nil, errors.Wrap(err, "failed to create follow-up")
	}

	srv.log(ctx).Info("Follow-up sent",
		slog.String("follow_up_id", followUp.ID),
		slog.String("user_id", input.UserID.String()),
	)

	return followUp, nil
}

// ListMyFollowUps returns follow-ups sent to the caller, newest first.
func (srv *followUpService) ListMyFollowUps(ctx context.Context, userID uuid.UUID) ([]*entity.FollowUp, error) {
	followUps, err := srv.followUpRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list follow-ups")
	}

	return followUps, nil
}
