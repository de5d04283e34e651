package handler

import (
	"log/slog"
	"net/http"

	"afyalink/internal/delivery/http/middleware"
	"afyalink/internal/delivery/http/response"
	"afyalink/internal/domain/entity"
	"afyalink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PrescriptionHandler holds dependencies for prescription-related handlers.
type PrescriptionHandler struct {
	uc     usecase.PrescriptionUsecase
	logger *slog.Logger
}

// NewPrescriptionHandler is the constructor for PrescriptionHandler, injected by Fx.
func NewPrescriptionHandler(uc usecase.PrescriptionUsecase, logger *slog.Logger) *PrescriptionHandler {
	return &PrescriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Upload accepts a multipart form with the prescription image and its
// accompanying fields, and creates a pending prescription record.
func (h *PrescriptionHandler) Upload(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Prescription image is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	input := usecase.UploadPrescriptionInput{
		PatientName: c.FormValue("patient_name"),
		Email:       c.FormValue("email"),
		Notes:       c.FormValue("notes"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		File:        file,
	}

	prescription, err := h.uc.Upload(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, prescription, "Prescription uploaded successfully")
}

// ListMine returns the caller's prescription uploads, newest first.
func (h *PrescriptionHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	prescriptions, err := h.uc.ListMyPrescriptions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescriptions, "Prescriptions retrieved successfully")
}

// Get returns one prescription. Customers can only read their own.
func (h *PrescriptionHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	prescription, err := h.uc.GetPrescription(c.Request().Context(), userID, middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescription, "Prescription retrieved successfully")
}

// ListByStatus returns the admin review queue. Defaults to the pending
// queue when no ?status= query parameter is given.
func (h *PrescriptionHandler) ListByStatus(c echo.Context) error {
	status := entity.PrescriptionStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.PrescriptionStatusPending
	}
	if !status.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown prescription status")
	}

	prescriptions, err := h.uc.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescriptions, "Prescriptions retrieved successfully")
}

// Review records an admin decision on a prescription. Reviewing an
// already-reviewed prescription overwrites the earlier decision.
func (h *PrescriptionHandler) Review(c echo.Context) error {
	var input usecase.ReviewPrescriptionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	prescription, err := h.uc.Review(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescription, "Prescription reviewed")
}
