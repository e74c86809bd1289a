package repository

import (
	summarydomain "aimeet-backend/internal/summary/domain"

	"gorm.io/gorm"
)

// DefaultHistoryLimit is used when the caller asks for a non-positive number
// of records.
const DefaultHistoryLimit = 10

// HistoryRepository defines the interface for the summary history store
type HistoryRepository interface {
	// Append inserts a record unconditionally. No deduplication: equivalent
	// content appended twice creates two distinct records.
	Append(record *summarydomain.SummaryRecord) error
	// FetchRecent returns up to limit records, newest first. An empty store
	// yields an empty slice, not an error.
	FetchRecent(limit int) ([]summarydomain.SummaryRecord, error)
}

// historyRepository implements HistoryRepository interface
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new instance of historyRepository
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

func (r *historyRepository) Append(record *summarydomain.SummaryRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return &summarydomain.PersistenceError{Err: err}
	}
	return nil
}

func (r *historyRepository) FetchRecent(limit int) ([]summarydomain.SummaryRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	records := make([]summarydomain.SummaryRecord, 0, limit)
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, &summarydomain.PersistenceError{Err: err}
	}
	return records, nil
}
