package handler

import (
	"log/slog"
	"net/http"

	"afyalink/internal/delivery/http/response"
	"afyalink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdviceHandler holds dependencies for the symptom-advice handler.
type AdviceHandler struct {
	uc     usecase.AdviceUsecase
	logger *slog.Logger
}

// NewAdviceHandler is the constructor for AdviceHandler, injected by Fx.
func NewAdviceHandler(uc usecase.AdviceUsecase, logger *slog.Logger) *AdviceHandler {
	return &AdviceHandler{
		uc:     uc,
		logger: logger,
	}
}

type adviceRequest struct {
	Symptoms string `json:"symptoms"`
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

// GetAdvice forwards a symptom description to the advisory service and
// returns its suggestion.
func (h *AdviceHandler) GetAdvice(c echo.Context) error {
	var input adviceRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advice input")
	}

	advice, err := h.uc.GetAdvice(c.Request().Context(), input.Symptoms)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adviceResponse{Advice: advice}, "Advice retrieved successfully")
}
