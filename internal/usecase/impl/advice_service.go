package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "afyalink/internal/delivery/context"
	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/service"
	"afyalink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adviceService implements the AdviceUsecase interface.
type adviceService struct {
	advisor service.Advisor
	logger  *slog.Logger
}

// AdviceServiceParams holds dependencies for AdviceService, injected by Fx.
type AdviceServiceParams struct {
	fx.In

	Advisor service.Advisor
	Logger  *slog.Logger
}

// NewAdviceService is the constructor for adviceService.
func NewAdviceService(params AdviceServiceParams) usecase.AdviceUsecase {
	return &adviceService{
		advisor: params.Advisor,
		logger:  params.Logger,
	}
}

// GetAdvice returns advice text for a symptom description.
func (srv *adviceService) GetAdvice(ctx context.Context, symptoms string) (string, error) {
	if strings.TrimSpace(symptoms) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("symptoms description is required")
	}

	advice, err := srv.advisor.Suggest(ctx, symptoms)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Advisor request failed",
			slog.Any("error", err),
		)

		return "", errors.Wrap(err, "failed to get advice")
	}

	return advice, nil
}
