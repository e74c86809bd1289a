package domain

import "time"

// SummaryRecord is one distributed summary. Records are append-only: created
// exactly once when a distribution reaches the persistence stage, never
// mutated, never deleted. The auto-increment ID breaks recency ties between
// records created in the same instant.
type SummaryRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Content    string    `json:"content" gorm:"type:text"`
	Recipients []string  `json:"recipients" gorm:"type:text;serializer:json"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name for GORM
func (SummaryRecord) TableName() string {
	return "summary_records"
}
