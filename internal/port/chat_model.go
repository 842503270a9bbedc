package port

import (
	"context"

	"folio/internal/domain"
)

// ChatModel abstracts the LLM provider. Invoke performs exactly one attempt;
// callers decide whether a failure is surfaced or swallowed. This is the only
// core component permitted to perform network I/O.
type ChatModel interface {
	Invoke(ctx context.Context, payload domain.PromptPayload) (*domain.RawModelResponse, error)
}
