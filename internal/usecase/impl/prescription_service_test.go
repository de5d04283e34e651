package impl

import (
	"context"
	"strings"
	"testing"

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

func newPrescriptionService(t *testing.T) (usecase.PrescriptionUsecase, *mockRepo.MockPrescriptionRepository, *mockSvc.MockFileStorage, *mockSvc.MockEventPublisher) {
	t.Helper()

	prescriptionRepo := mockRepo.NewMockPrescriptionRepository(t)
	fileStorage := mockSvc.NewMockFileStorage(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewPrescriptionService(PrescriptionServiceParams{
		PrescriptionRepo: prescriptionRepo,
		FileStorage:      fileStorage,
		EventPublisher:   eventPublisher,
		Logger:           testLogger(),
	})

	return svc, prescriptionRepo, fileStorage, eventPublisher
}

func TestPrescriptionService_Upload_CreatesPendingRecord(t *testing.T) {
	svc, prescriptionRepo, fileStorage, _ := newPrescriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return("https://files.afyalink.example/prescriptions/p1.jpg", nil)

	prescriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Prescription")).
		Run(func(_ context.Context, prescription *entity.Prescription) {
			assert.Equal(t, entity.PrescriptionStatusPending, prescription.Status)
			assert.Equal(t, userID, prescription.UserID)
			assert.Equal(t, "https://files.afyalink.example/prescriptions/p1.jpg", prescription.ImageURL)
		}).
		Return(nil)

	prescription, err := svc.Upload(ctx, userID, usecase.UploadPrescriptionInput{
		PatientName: "Jane Wanjiku",
		Email:       "jane@example.com",
		FileName:    "scan.jpg",
		ContentType: "image/jpeg",
		File:        strings.NewReader("jpeg bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PrescriptionStatusPending, prescription.Status)
}

func TestPrescriptionService_Upload_FailedUploadCreatesNoRecord(t *testing.T) {
	svc, _, fileStorage, _ := newPrescriptionService(t)

	ctx := context.Background()

	fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return("", assert.AnError)

	// No Create expectation: the record must not exist without its image.
	_, err := svc.Upload(ctx, uuid.New(), usecase.UploadPrescriptionInput{
		PatientName: "Jane Wanjiku",
		FileName:    "scan.jpg",
		ContentType: "image/jpeg",
		File:        strings.NewReader("jpeg bytes"),
	})
	require.Error(t, err)
}

func TestPrescriptionService_Upload_MissingFieldsRejected(t *testing.T) {
	svc, _, _, _ := newPrescriptionService(t)

	ctx := context.Background()

	_, err := svc.Upload(ctx, uuid.New(), usecase.UploadPrescriptionInput{
		PatientName: "Jane",
	})
	require.Error(t, err)

	_, err = svc.Upload(ctx, uuid.New(), usecase.UploadPrescriptionInput{
		File: strings.NewReader("jpeg bytes"),
	})
	require.Error(t, err)
}

func TestPrescriptionService_Review_RecordsDecision(t *testing.T) {
	svc, prescriptionRepo, _, eventPublisher := newPrescriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	prescriptionRepo.EXPECT().
		FindByID(ctx, "rx-1").
		Return(&entity.Prescription{ID: "rx-1", UserID: userID, Status: entity.PrescriptionStatusPending}, nil)

	prescriptionRepo.EXPECT().
		UpdateReview(ctx, "rx-1", entity.PrescriptionStatusApproved, "looks valid").
		Return(nil)

	eventPublisher.EXPECT().
		PublishStoreEvent(ctx, mock.MatchedBy(func(event *service.StoreEvent) bool {
			return event.Type == service.EventTypePrescriptionReviewed && event.PrescriptionID == "rx-1"
		})).
		Return(nil)

	prescription, err := svc.Review(ctx, "rx-1", usecase.ReviewPrescriptionInput{
		Status:      entity.PrescriptionStatusApproved,
		ReviewNotes: "looks valid",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PrescriptionStatusApproved, prescription.Status)
	assert.Equal(t, "looks valid", prescription.ReviewNotes)
}

func TestPrescriptionService_Review_RepeatReviewOverwrites(t *testing.T) {
	svc, prescriptionRepo, _, eventPublisher := newPrescriptionService(t)

	ctx := context.Background()

	// A prescription already approved can be re-reviewed; the new decision
	// simply replaces the old one.
	prescriptionRepo.EXPECT().
		FindByID(ctx, "rx-1").
		Return(&entity.Prescription{ID: "rx-1", Status: entity.PrescriptionStatusApproved, ReviewNotes: "looks valid"}, nil)

	prescriptionRepo.EXPECT().
		UpdateReview(ctx, "rx-1", entity.PrescriptionStatusRejected, "dosage illegible").
		Return(nil)

	eventPublisher.EXPECT().
		PublishStoreEvent(ctx, mock.AnythingOfType("*service.StoreEvent")).
		Return(nil)

	prescription, err := svc.Review(ctx, "rx-1", usecase.ReviewPrescriptionInput{
		Status:      entity.PrescriptionStatusRejected,
		ReviewNotes: "dosage illegible",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PrescriptionStatusRejected, prescription.Status)
	assert.Equal(t, "dosage illegible", prescription.ReviewNotes)
}

func TestPrescriptionService_Review_PendingIsNotADecision(t *testing.T) {
	svc, _, _, _ := newPrescriptionService(t)

	_, err := svc.Review(context.Background(), "rx-1", usecase.ReviewPrescriptionInput{
		Status: entity.PrescriptionStatusPending,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPrescriptionService_GetPrescription_OwnershipEnforced(t *testing.T) {
	svc, prescriptionRepo, _, _ := newPrescriptionService(t)

	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	prescriptionRepo.EXPECT().
		FindByID(ctx, "rx-1").
		Return(&entity.Prescription{ID: "rx-1", UserID: owner}, nil).
		Twice()

	_, err := svc.GetPrescription(ctx, stranger, false, "rx-1")
	require.ErrorIs(t, err, domainerrors.ErrPrescriptionNotFound)

	prescription, err := svc.GetPrescription(ctx, stranger, true, "rx-1")
	require.NoError(t, err)
	assert.Equal(t, "rx-1", prescription.ID)
}

func TestPrescriptionService_ListByStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newPrescriptionService(t)

	_, err := svc.ListByStatus(context.Background(), entity.PrescriptionStatus("weird"))
	require.Error(t, err)
}

func TestPrescriptionService_ListByStatus_ReturnsQueue(t *testing.T) {
	svc, prescriptionRepo, _, _ := newPrescriptionService(t)

	ctx := context.Background()

	prescriptionRepo.EXPECT().
		ListByStatus(ctx, entity.PrescriptionStatusPending).
		Return([]*entity.Prescription{{ID: "rx-1"}, {ID: "rx-2"}}, nil)

	queue, err := svc.ListByStatus(ctx, entity.PrescriptionStatusPending)
	require.NoError(t, err)
	assert.Len(t, queue, 2)
}

func TestPrescriptionService_Review_NotFound(t *testing.T) {
	svc, prescriptionRepo, _, _ := newPrescriptionService(t)

	ctx := context.Background()

	prescriptionRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrPrescriptionNotFound)

	_, err := svc.Review(ctx, "missing", usecase.ReviewPrescriptionInput{
		Status: entity.PrescriptionStatusApproved,
	})
	require.ErrorIs(t, err, domainerrors.ErrPrescriptionNotFound)
}
