package usecase

import (
	"context"
	"errors"
	"testing"

	summarydomain "aimeet-backend/internal/summary/domain"
	"aimeet-backend/internal/summary/repository"
	"aimeet-backend/pkg/mailer"
	"aimeet-backend/pkg/markdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeSummarizer struct {
	summary string
	err     error
}

func (f *fakeSummarizer) SummarizeTranscript(_ context.Context, _, _ string) (string, error) {
	return f.summary, f.err
}

type fakeSender struct {
	err   error
	calls int

	lastHTML       string
	lastRecipients []string
}

func (f *fakeSender) Send(_ context.Context, summaryHTML string, recipients []string) (*mailer.Receipt, error) {
	f.calls++
	f.lastHTML = summaryHTML
	f.lastRecipients = recipients
	if f.err != nil {
		return nil, f.err
	}
	return &mailer.Receipt{MessageID: "<test@localhost>", Accepted: recipients}, nil
}

type failingRepo struct{}

func (failingRepo) Append(*summarydomain.SummaryRecord) error {
	return &summarydomain.PersistenceError{Err: errors.New("connection refused")}
}

func (failingRepo) FetchRecent(int) ([]summarydomain.SummaryRecord, error) {
	return nil, &summarydomain.PersistenceError{Err: errors.New("connection refused")}
}

func newSQLiteRepo(t *testing.T) repository.HistoryRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&summarydomain.SummaryRecord{}))

	return repository.NewHistoryRepository(db)
}

func TestSummarizeReturnsProviderText(t *testing.T) {
	uc := NewSummaryUsecase(&fakeSummarizer{summary: "- ship v2 by Friday"}, markdown.NewRenderer(), &fakeSender{}, newSQLiteRepo(t))

	out, err := uc.Summarize(context.Background(), "Alice: let's ship v2 by Friday.", "Summarize as bullet points")
	require.NoError(t, err)
	assert.Equal(t, "- ship v2 by Friday", out)
}

func TestSummarizeWrapsProviderError(t *testing.T) {
	uc := NewSummaryUsecase(&fakeSummarizer{err: errors.New("model overloaded")}, markdown.NewRenderer(), &fakeSender{}, newSQLiteRepo(t))

	out, err := uc.Summarize(context.Background(), "transcript", "instruction")
	require.Error(t, err)
	assert.Empty(t, out, "never both a summary and an error")

	var provErr *summarydomain.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Contains(t, provErr.Error(), "model overloaded")
}

func TestDistributeSendFailureDoesNotAppend(t *testing.T) {
	repo := newSQLiteRepo(t)
	sender := &fakeSender{err: errors.New("smtp: 535 auth failed")}
	uc := NewSummaryUsecase(&fakeSummarizer{}, markdown.NewRenderer(), sender, repo)

	result, err := uc.Distribute(context.Background(), "some summary", []string{"a@x.com"})
	require.Error(t, err)
	assert.Nil(t, result)

	var transportErr *summarydomain.TransportError
	require.ErrorAs(t, err, &transportErr)

	records, err := repo.FetchRecent(10)
	require.NoError(t, err)
	assert.Empty(t, records, "no orphaned record on send failure")
}

func TestDistributeStoreFailureStillSucceeds(t *testing.T) {
	sender := &fakeSender{}
	uc := NewSummaryUsecase(&fakeSummarizer{}, markdown.NewRenderer(), sender, failingRepo{})

	result, err := uc.Distribute(context.Background(), "some summary", []string{"a@x.com"})
	require.NoError(t, err, "persistence is best effort; delivery success wins")
	require.NotNil(t, result)

	assert.True(t, result.Delivered)
	assert.False(t, result.Recorded)
	require.NotNil(t, result.Receipt)
	assert.Equal(t, "<test@localhost>", result.Receipt.MessageID)
}

func TestDistributeRendersBeforeSending(t *testing.T) {
	sender := &fakeSender{}
	repo := newSQLiteRepo(t)
	uc := NewSummaryUsecase(&fakeSummarizer{}, markdown.NewRenderer(), sender, repo)

	result, err := uc.Distribute(context.Background(), "# Decisions\n\n- ship v2", []string{"a@x.com"})
	require.NoError(t, err)

	assert.Contains(t, sender.lastHTML, "<h1>Decisions</h1>")
	assert.Contains(t, sender.lastHTML, "<li>ship v2</li>")

	assert.True(t, result.Delivered)
	assert.True(t, result.Recorded)

	records, err := repo.FetchRecent(1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, sender.lastHTML, records[0].Content, "the persisted content is the rendered fragment")
}

func TestDistributeValidatesInput(t *testing.T) {
	sender := &fakeSender{}
	uc := NewSummaryUsecase(&fakeSummarizer{}, markdown.NewRenderer(), sender, newSQLiteRepo(t))

	_, err := uc.Distribute(context.Background(), "   ", []string{"a@x.com"})
	assert.ErrorIs(t, err, summarydomain.ErrEmptySummary)

	_, err = uc.Distribute(context.Background(), "summary", nil)
	assert.ErrorIs(t, err, summarydomain.ErrNoRecipients)

	_, err = uc.Distribute(context.Background(), "summary", []string{" , not-an-address , "})
	assert.ErrorIs(t, err, summarydomain.ErrNoRecipients)

	assert.Zero(t, sender.calls, "nothing is sent when validation fails")
}

func TestNormalizeRecipients(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "comma separated string",
			raw:  []string{"a@x.com, b@x.com"},
			want: []string{"a@x.com", "b@x.com"},
		},
		{
			name: "already a list",
			raw:  []string{"a@x.com", "b@x.com"},
			want: []string{"a@x.com", "b@x.com"},
		},
		{
			name: "order and duplicates preserved",
			raw:  []string{"b@x.com", "a@x.com,b@x.com"},
			want: []string{"b@x.com", "a@x.com", "b@x.com"},
		},
		{
			name: "blanks and implausible entries dropped",
			raw:  []string{" a@x.com ", "", "nonsense", ","},
			want: []string{"a@x.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRecipients(tt.raw))
		})
	}
}

func TestFetchHistoryPropagatesStoreError(t *testing.T) {
	uc := NewSummaryUsecase(&fakeSummarizer{}, markdown.NewRenderer(), &fakeSender{}, failingRepo{})

	_, err := uc.FetchHistory(context.Background(), 10)
	require.Error(t, err)

	var persistErr *summarydomain.PersistenceError
	assert.ErrorAs(t, err, &persistErr)
}

func TestPipelineEndToEnd(t *testing.T) {
	repo := newSQLiteRepo(t)
	sender := &fakeSender{}
	uc := NewSummaryUsecase(&fakeSummarizer{summary: "- Alice will ship v2 by Friday"}, markdown.NewRenderer(), sender, repo)

	summary, err := uc.Summarize(context.Background(), "Alice: let's ship v2 by Friday.", "Summarize as bullet points")
	require.NoError(t, err)
	require.NotEmpty(t, summary)

	result, err := uc.Distribute(context.Background(), summary, []string{"a@x.com,b@x.com"})
	require.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.True(t, result.Recorded)

	records, err := uc.FetchHistory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, records[0].Recipients)
}
