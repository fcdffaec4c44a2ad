package domain

import "time"

// Priority of a deadline. Stored as text in Postgres.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Status of a deadline. The zero value is not valid; new deadlines start PENDING.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusOverdue    Status = "OVERDUE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// SortIndex is the fixed listing order: incomplete work surfaces first.
func (s Status) SortIndex() int {
	switch s {
	case StatusPending:
		return 0
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	case StatusOverdue:
		return 3
	}
	return 4
}

// Domain entity. Does not depend on Gin, Postgres or Redis.
type Deadline struct {
	ID          string
	Title       string
	Description string
	DueDate     time.Time
	Priority    Priority
	Status      Status

	DocumentID   *string
	ExpedienteID *string

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Summary projections of the related records, populated on reads
	// when the relation is set.
	Document   *DocumentSummary
	Expediente *ExpedienteSummary
}

// DocumentSummary is the projection of a document attached to a deadline.
type DocumentSummary struct {
	ID                string
	Title             string
	CorrelativeNumber string
	ResponsibleUserID *string
}

// ExpedienteSummary is the projection of an expediente attached to a deadline.
type ExpedienteSummary struct {
	ID    string
	Code  string
	Title string
}
