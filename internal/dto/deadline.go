package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DueDate parses due_date from JSON as either date-only ("2006-01-02") or
// RFC3339. Date-only is stored as start of that day in UTC.
type DueDate struct{ t *time.Time }

func (d *DueDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02", // date only
		time.RFC3339, // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("due_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d DueDate) Ptr() *time.Time { return d.t }

// OptionalString distinguishes an omitted field from an explicit null:
// Present is false when the field was absent from the JSON body, true with a
// nil Value on explicit null, true with a value otherwise. PATCH relation
// fields need all three (unchanged / disconnect / connect).
type OptionalString struct {
	Present bool
	Value   *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	return json.Unmarshal(data, &o.Value)
}

type CreateDeadlineRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=200"`
	Description  string  `json:"description" binding:"max=2000"`
	DueDate      DueDate `json:"dueDate" binding:"required"`
	Priority     *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status       *string `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED OVERDUE"`
	DocumentID   *string `json:"documentId"`
	ExpedienteID *string `json:"expedienteId"`
}

type UpdateDeadlineRequest struct {
	Title        *string        `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string        `json:"description" binding:"omitempty,max=2000"`
	DueDate      *DueDate       `json:"dueDate"` // nil = unchanged, value = set
	Priority     *string        `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status       *string        `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED OVERDUE"`
	CompletedAt  *time.Time     `json:"completedAt"`
	DocumentID   OptionalString `json:"documentId"`
	ExpedienteID OptionalString `json:"expedienteId"`
}

type CalculateDeadlineRequest struct {
	DeadlineType string `json:"deadlineType" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
}

type DocumentSummaryResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	CorrelativeNumber string `json:"correlativeNumber"`
}

type ExpedienteSummaryResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

type DeadlineResponse struct {
	ID           string                     `json:"id"`
	Title        string                     `json:"title"`
	Description  string                     `json:"description"`
	DueDate      time.Time                  `json:"dueDate"`
	Priority     string                     `json:"priority"`
	Status       string                     `json:"status"`
	DocumentID   *string                    `json:"documentId"`
	ExpedienteID *string                    `json:"expedienteId"`
	CompletedAt  *time.Time                 `json:"completedAt"`
	CreatedAt    time.Time                  `json:"createdAt"`
	UpdatedAt    time.Time                  `json:"updatedAt"`
	Document     *DocumentSummaryResponse   `json:"document,omitempty"`
	Expediente   *ExpedienteSummaryResponse `json:"expediente,omitempty"`
}

type ListDeadlinesResponse struct {
	Items []DeadlineResponse `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

type CalculationResponse struct {
	DeadlineType string `json:"deadlineType"`
	Quantity     int    `json:"quantity"`
	StartDate    string `json:"startDate"`
	DueDate      string `json:"dueDate"`
	CalculatedAt string `json:"calculatedAt"`
}

type SweepResponse struct {
	Count int64 `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
