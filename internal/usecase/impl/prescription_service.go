package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	deliverycontext "afyalink/internal/delivery/context"
	"afyalink/internal/domain/entity"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/repository"
	"afyalink/internal/domain/service"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// prescriptionService implements the PrescriptionUsecase interface.
type prescriptionService struct {
	prescriptionRepo repository.PrescriptionRepository
	fileStorage      service.FileStorage
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
}

// PrescriptionServiceParams holds dependencies for PrescriptionService, injected by Fx.
type PrescriptionServiceParams struct {
	fx.In

	PrescriptionRepo repository.PrescriptionRepository
	FileStorage      service.FileStorage
	EventPublisher   service.EventPublisher
	Logger           *slog.Logger
}

// NewPrescriptionService is the constructor for prescriptionService.
func NewPrescriptionService(params PrescriptionServiceParams) usecase.PrescriptionUsecase {
	return &prescriptionService{
		prescriptionRepo: params.PrescriptionRepo,
		fileStorage:      params.FileStorage,
		eventPublisher:   params.EventPublisher,
		logger:           params.Logger,
	}
}

func (srv *prescriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the image in blob storage first, then creates the pending
// prescription record pointing at the durable URL. An upload failure means
// no record is created.
func (srv *prescriptionService) Upload(ctx context.Context, userID uuid.UUID, input usecase.UploadPrescriptionInput) (*entity.Prescription, error) {
	if input.File == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("prescription image is required")
	}
	if strings.TrimSpace(input.PatientName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("patient name is required")
	}

	id := uuid.NewString()
	key := "prescriptions/" + userID.String() + "/" + id + path.Ext(input.FileName)

	imageURL, err := srv.fileStorage.Upload(ctx, key, input.ContentType, input.File)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload prescription image")
	}

	prescription := &entity.Prescription{
		ID:          id,
		UserID:      userID,
		PatientName: input.PatientName,
		Email:       input.Email,
		ImageURL:    imageURL,
		Notes:       input.Notes,
		Status:      entity.PrescriptionStatusPending,
	}

	if err := srv.prescriptionRepo.Create(ctx, prescription); err != nil {
		return nil, errors.Wrap(err, "failed to create prescription")
	}

	srv.log(ctx).Info("Prescription uploaded",
		slog.String("prescription_id", id),
		slog.String("user_id", userID.String()),
	)

	return prescription, nil
}

// GetPrescription returns one prescription, enforcing ownership for
// non-admins.
func (srv *prescriptionService) GetPrescription(ctx context.Context, userID uuid.UUID, isAdmin bool, id string) (*entity.Prescription, error) {
	prescription, err := srv.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPrescriptionNotFound) {
			return nil, domainerrors.ErrPrescriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find prescription")
	}

	if !isAdmin && prescription.UserID != userID {
		return nil, domainerrors.ErrPrescriptionNotFound
	}

	return prescription, nil
}

// ListMyPrescriptions returns the caller's uploads, newest first.
func (srv *prescriptionService) ListMyPrescriptions(ctx context.Context, userID uuid.UUID) ([]*entity.Prescription, error) {
	prescriptions, err := srv.prescriptionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prescriptions")
	}

	return prescriptions, nil
}

// ListByStatus returns the admin review queue for a status.
func (srv *prescriptionService) ListByStatus(ctx context.Context, status entity.PrescriptionStatus) ([]*entity.Prescription, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown prescription status")
	}

	prescriptions, err := srv.prescriptionRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prescriptions by status")
	}

	return prescriptions, nil
}

// Review records an admin decision. A repeat review overwrites the earlier
// decision and refreshes the review timestamp; there is no status machine
// on prescriptions.
func (srv *prescriptionService) Review(ctx context.Context, id string, input usecase.ReviewPrescriptionInput) (*entity.Prescription, error) {
	if !input.Status.IsDecision() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("review status must be approved or rejected")
	}

	prescription, err := srv.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPrescriptionNotFound) {
			return nil, domainerrors.ErrPrescriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find prescription")
	}

	if err := srv.prescriptionRepo.UpdateReview(ctx, id, input.Status, input.ReviewNotes); err != nil {
		return nil, errors.Wrap(err, "failed to update prescription review")
	}
	prescription.Status = input.Status
	prescription.ReviewNotes = input.ReviewNotes

	srv.log(ctx).Info("Prescription reviewed",
		slog.String("prescription_id", id),
		slog.String("status", string(input.Status)),
	)

	event := &service.StoreEvent{
		Type:           service.EventTypePrescriptionReviewed,
		UserID:         prescription.UserID.String(),
		PrescriptionID: id,
		Status:         string(input.Status),
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := srv.eventPublisher.PublishStoreEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish store event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}

	return prescription, nil
}
