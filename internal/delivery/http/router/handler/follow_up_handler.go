package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"afyalink/internal/delivery/http/middleware"
	"afyalink/internal/delivery/http/response"
	"afyalink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FollowUpHandler holds dependencies for follow-up related handlers.
type FollowUpHandler struct {
	uc     usecase.FollowUpUsecase
	logger *slog.Logger
}

// NewFollowUpHandler is the constructor for FollowUpHandler, injected by Fx.
func NewFollowUpHandler(uc usecase.FollowUpUsecase, logger *slog.Logger) *FollowUpHandler {
	return &FollowUpHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCandidates returns customers aggregated from recent orders for the
// admin follow-up screen. Accepts an optional ?limit= query parameter.
func (h *FollowUpHandler) ListCandidates(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
		}
		limit = parsed
	}

	candidates, err := h.uc.ListCandidates(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, candidates, "Follow-up candidates retrieved successfully")
}

// Send records an admin follow-up message for a customer.
func (h *FollowUpHandler) Send(c echo.Context) error {
	var input usecase.SendFollowUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid follow-up input")
	}

	followUp, err := h.uc.SendFollowUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, followUp, "Follow-up sent successfully")
}

// ListMine returns follow-ups sent to the caller, newest first.
func (h *FollowUpHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	followUps, err := h.uc.ListMyFollowUps(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, followUps, "Follow-ups retrieved successfully")
}
