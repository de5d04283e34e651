package usecase

import "context"

// AdviceUsecase exposes the symptom-advice collaborator to the storefront.
// The advice text is informational only and never writes store state.
type AdviceUsecase interface {
	// GetAdvice returns advice for a free-text symptom description.
	GetAdvice(ctx context.Context, symptoms string) (string, error)
}
