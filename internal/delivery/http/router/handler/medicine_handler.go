package handler

import (
	"log/slog"
	"net/http"

	"afyalink/internal/delivery/http/response"
	"afyalink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MedicineHandler holds dependencies for catalog-related handlers.
type MedicineHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewMedicineHandler is the constructor for MedicineHandler, injected by Fx.
func NewMedicineHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *MedicineHandler {
	return &MedicineHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the catalog, optionally filtered by ?category=.
func (h *MedicineHandler) List(c echo.Context) error {
	medicines, err := h.uc.ListMedicines(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicines, "Medicines retrieved successfully")
}

// Get returns one catalog item.
func (h *MedicineHandler) Get(c echo.Context) error {
	medicine, err := h.uc.GetMedicine(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicine, "Medicine retrieved successfully")
}

// Create adds a catalog item.
func (h *MedicineHandler) Create(c echo.Context) error {
	var input usecase.MedicineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medicine input")
	}

	medicine, err := h.uc.CreateMedicine(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, medicine, "Medicine created successfully")
}

// Update overwrites a catalog item's writable fields.
func (h *MedicineHandler) Update(c echo.Context) error {
	var input usecase.MedicineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medicine input")
	}

	medicine, err := h.uc.UpdateMedicine(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, medicine, "Medicine updated successfully")
}

// Delete removes a catalog item.
func (h *MedicineHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteMedicine(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Medicine deleted successfully")
}
