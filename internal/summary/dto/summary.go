package dto

import (
	"encoding/json"
	"fmt"

	summarydomain "aimeet-backend/internal/summary/domain"
	"aimeet-backend/pkg/mailer"
)

// RecipientList accepts either a JSON array of addresses or a single
// comma-separated string, which is how the original frontend posts it. Only
// the JSON shape is resolved here; address normalization happens in the
// usecase.
type RecipientList []string

func (r *RecipientList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = RecipientList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*r = RecipientList(many)
		return nil
	}

	return fmt.Errorf("recipients must be a string or an array of strings")
}

type SummarizeRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	Prompt     string `json:"prompt"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type DistributeRequest struct {
	Summary    string        `json:"summary" binding:"required"`
	Recipients RecipientList `json:"recipients" binding:"required"`
}

type DistributeResponse struct {
	Success  bool            `json:"success"`
	Receipt  *mailer.Receipt `json:"receipt,omitempty"`
	Recorded bool            `json:"recorded"`
}

type HistoryResponse struct {
	Success bool                          `json:"success"`
	History []summarydomain.SummaryRecord `json:"history"`
}
