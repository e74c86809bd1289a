package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	summarydomain "aimeet-backend/internal/summary/domain"
	"aimeet-backend/internal/summary/repository"
	"aimeet-backend/pkg/ai"
)

// summaryUsecase implements SummaryUsecase interface
type summaryUsecase struct {
	summarizer  ai.SummarizerService
	renderer    Renderer
	mailSender  MailSender
	historyRepo repository.HistoryRepository
}

// NewSummaryUsecase creates a new instance of summaryUsecase
func NewSummaryUsecase(summarizer ai.SummarizerService, renderer Renderer, mailSender MailSender, historyRepo repository.HistoryRepository) SummaryUsecase {
	return &summaryUsecase{
		summarizer:  summarizer,
		renderer:    renderer,
		mailSender:  mailSender,
		historyRepo: historyRepo,
	}
}

func (u *summaryUsecase) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	summary, err := u.summarizer.SummarizeTranscript(ctx, transcript, instruction)
	if err != nil {
		return "", &summarydomain.ProviderError{Err: err}
	}
	return summary, nil
}

func (u *summaryUsecase) Distribute(ctx context.Context, summaryText string, recipients []string) (*DistributionResult, error) {
	if strings.TrimSpace(summaryText) == "" {
		return nil, summarydomain.ErrEmptySummary
	}

	normalized := NormalizeRecipients(recipients)
	if len(normalized) == 0 {
		return nil, summarydomain.ErrNoRecipients
	}

	// Stage 1: render. Never fails; malformed markdown degrades to text.
	html := u.renderer.Render(summaryText)

	// Stage 2: send. A failure here aborts the distribution before anything
	// is persisted, so no orphaned record can exist for an unsent summary.
	receipt, err := u.mailSender.Send(ctx, html, normalized)
	if err != nil {
		return nil, &summarydomain.TransportError{Err: err}
	}

	// Stage 3: persist, best effort. The email is already out; a store
	// failure is logged and the operation still reports success.
	result := &DistributionResult{
		Receipt:   receipt,
		Delivered: true,
	}
	record := &summarydomain.SummaryRecord{
		Content:    html,
		Recipients: normalized,
		CreatedAt:  time.Now(),
	}
	if err := u.historyRepo.Append(record); err != nil {
		log.Printf("[WARN] summary delivered (message %s) but history append failed: %v", receipt.MessageID, err)
		return result, nil
	}
	result.Recorded = true

	return result, nil
}

func (u *summaryUsecase) FetchHistory(ctx context.Context, limit int) ([]summarydomain.SummaryRecord, error) {
	return u.historyRepo.FetchRecent(limit)
}

// NormalizeRecipients flattens the caller-supplied address list into the one
// canonical form the rest of the pipeline sees: comma-separated entries are
// split, whitespace trimmed, and entries without an "@" dropped. Order and
// duplicates are preserved.
func NormalizeRecipients(raw []string) []string {
	normalized := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, addr := range strings.Split(entry, ",") {
			addr = strings.TrimSpace(addr)
			if addr == "" || !strings.Contains(addr, "@") {
				continue
			}
			normalized = append(normalized, addr)
		}
	}
	return normalized
}
