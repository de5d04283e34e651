package handler

import (
	"log/slog"
	"net/http"

	"afyalink/internal/delivery/http/response"
	"afyalink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// InitiatePush starts a simulated M-PESA STK push. An invalid phone number
// fails without creating an intent.
func (h *PaymentHandler) InitiatePush(c echo.Context) error {
	var input usecase.InitiatePaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	intent, err := h.uc.InitiateMpesaPush(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, intent, "Payment initiated")
}

// GetStatus returns the current payment intent snapshot for polling.
func (h *PaymentHandler) GetStatus(c echo.Context) error {
	intent, err := h.uc.GetPaymentStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, intent, "Payment status retrieved")
}

// Cancel aborts an in-flight payment intent. Cancelling a settled intent
// is a no-op.
func (h *PaymentHandler) Cancel(c echo.Context) error {
	intent, err := h.uc.CancelPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, intent, "Payment cancelled")
}
