package service

import "context"

// Advisor is the generative-text collaborator: free-text symptoms in,
// unstructured advice out. Stateless; no invariants. The advice is
// informational and never feeds back into cart or order state.
type Advisor interface {
	// Suggest returns medicine advice for a symptom description.
	Suggest(ctx context.Context, symptoms string) (string, error)
}
