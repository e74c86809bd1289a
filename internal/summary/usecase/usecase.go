package usecase

import (
	"context"

	summarydomain "aimeet-backend/internal/summary/domain"
	"aimeet-backend/pkg/mailer"
)

// DistributionResult is the two-phase outcome of a distribution: delivery and
// persistence can fail independently, and "sent but not logged" must stay
// visible to the caller.
type DistributionResult struct {
	Receipt   *mailer.Receipt
	Delivered bool
	Recorded  bool
}

// MailSender delivers a rendered summary to a recipient list.
type MailSender interface {
	Send(ctx context.Context, summaryHTML string, recipients []string) (*mailer.Receipt, error)
}

// Renderer converts summary markdown to an HTML fragment.
type Renderer interface {
	Render(source string) string
}

// SummaryUsecase defines the interface for the summary pipeline
type SummaryUsecase interface {
	// Summarize runs the transcript through the summarization provider and
	// returns the raw summary text for the caller to edit.
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
	// Distribute renders the summary, emails it, then best-effort records it.
	// A send failure aborts the operation; a persistence failure does not.
	Distribute(ctx context.Context, summaryText string, recipients []string) (*DistributionResult, error)
	// FetchHistory returns up to limit distributed summaries, newest first.
	FetchHistory(ctx context.Context, limit int) ([]summarydomain.SummaryRecord, error)
}
