package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/cache"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/calendar"
	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/metrics"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound           = errors.New("deadline not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrExpedienteNotFound = errors.New("expediente not found")
	ErrEmptyTitle         = errors.New("title must not be empty")
	ErrInvalidPriority    = errors.New("priority must be one of LOW, MEDIUM, HIGH, URGENT")
	ErrInvalidStatus      = errors.New("status must be one of PENDING, IN_PROGRESS, COMPLETED, OVERDUE")

	ErrInvalidDeadlineType = errors.New("deadline type must be BUSINESS_HOURS or CALENDAR_DAYS")
	ErrInvalidQuantity     = errors.New("quantity must be between 1 and 1000")
)

const (
	defaultLimit = 50
	maxLimit     = 200

	minQuantity = 1
	maxQuantity = 1000
)

// Rel is a tri-state relation patch: the zero value leaves the relation
// untouched, RelClear disconnects it, RelTo connects it. Callers must be able
// to express all three, so a plain *string is not enough.
type Rel struct {
	set bool
	id  *string
}

func RelTo(id string) Rel { return Rel{set: true, id: &id} }

func RelClear() Rel { return Rel{set: true} }

func (r Rel) Set() bool { return r.set }

func (r Rel) ID() *string { return r.id }

type CreateDeadlineInput struct {
	Title        string
	Description  string
	DueDate      time.Time
	Priority     *dom.Priority
	Status       *dom.Status
	DocumentID   *string
	ExpedienteID *string
}

type UpdateDeadlineInput struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	Priority     *dom.Priority
	Status       *dom.Status
	CompletedAt  *time.Time
	DocumentID   Rel
	ExpedienteID Rel
}

// DeadlineService owns deadline records. It holds no authoritative in-memory
// state: every operation re-reads from the store.
type DeadlineService struct {
	repo  repo.DeadlineRepo
	docs  repo.DocumentRepo
	exps  repo.ExpedienteRepo
	cache *cache.DeadlineCache
	cal   *calendar.Calendar
	log   *slog.Logger
	now   func() time.Time
	sf    singleflight.Group
}

// NewDeadlineService creates a DeadlineService. If c is nil, caching is disabled.
func NewDeadlineService(r repo.DeadlineRepo, docs repo.DocumentRepo, exps repo.ExpedienteRepo,
	c *cache.DeadlineCache, cal *calendar.Calendar, log *slog.Logger) *DeadlineService {
	return &DeadlineService{
		repo:  r,
		docs:  docs,
		exps:  exps,
		cache: c,
		cal:   cal,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// WithNow overrides the clock. Tests only.
func (s *DeadlineService) WithNow(now func() time.Time) *DeadlineService {
	s.now = now
	return s
}

func (s *DeadlineService) Calendar() *calendar.Calendar { return s.cal }

func (s *DeadlineService) Create(ctx context.Context, in CreateDeadlineInput) (dom.Deadline, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return dom.Deadline{}, ErrEmptyTitle
	}

	priority := dom.PriorityMedium
	if in.Priority != nil {
		priority = *in.Priority
	}
	if !priority.Valid() {
		return dom.Deadline{}, ErrInvalidPriority
	}
	status := dom.StatusPending
	if in.Status != nil {
		status = *in.Status
	}
	if !status.Valid() {
		return dom.Deadline{}, ErrInvalidStatus
	}

	if err := s.checkDocument(ctx, in.DocumentID); err != nil {
		return dom.Deadline{}, err
	}
	if err := s.checkExpediente(ctx, in.ExpedienteID); err != nil {
		return dom.Deadline{}, err
	}

	d, err := s.repo.Create(ctx, dom.Deadline{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		DueDate:      in.DueDate,
		Priority:     priority,
		Status:       status,
		DocumentID:   in.DocumentID,
		ExpedienteID: in.ExpedienteID,
	})
	if err != nil {
		return dom.Deadline{}, err
	}
	s.log.Info("deadline created", "id", d.ID, "title", d.Title, "due_date", d.DueDate)
	s.invalidateCache(ctx)
	return d, nil
}

// ListResult carries one page of the fixed-order listing.
type ListResult struct {
	Items []dom.Deadline
	Total int
	Page  int
	Limit int
}

func (s *DeadlineService) List(ctx context.Context, f repo.DeadlineFilter) (ListResult, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if s.cache != nil && isDefaultFilter(f) {
		v, err, _ := s.sf.Do("list:default", func() (interface{}, error) {
			if cached, err := s.cache.GetDefaultList(ctx); err == nil && cached != nil {
				return *cached, nil
			}
			items, total, err := s.repo.List(ctx, f)
			if err != nil {
				return nil, err
			}
			out := cache.CachedList{Items: items, Total: total}
			_ = s.cache.SetDefaultList(ctx, out)
			return out, nil
		})
		if err != nil {
			return ListResult{}, err
		}
		cl := v.(cache.CachedList)
		return ListResult{Items: cl.Items, Total: cl.Total, Page: f.Page, Limit: f.Limit}, nil
	}

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *DeadlineService) GetByID(ctx context.Context, id string) (dom.Deadline, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Deadline{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return dom.Deadline{}, err
	}
	return d, nil
}

func (s *DeadlineService) Update(ctx context.Context, id string, in UpdateDeadlineInput) (dom.Deadline, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return dom.Deadline{}, err
	}

	patch := existing
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return dom.Deadline{}, ErrEmptyTitle
		}
		patch.Title = title
	}
	if in.Description != nil {
		patch.Description = strings.TrimSpace(*in.Description)
	}
	if in.DueDate != nil {
		patch.DueDate = *in.DueDate
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return dom.Deadline{}, ErrInvalidPriority
		}
		patch.Priority = *in.Priority
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return dom.Deadline{}, ErrInvalidStatus
		}
		patch.Status = *in.Status
	}

	// completedAt tracks the COMPLETED status: entering stamps it (unless
	// the caller supplied a value), leaving clears it. The generic update
	// path deliberately allows leaving COMPLETED.
	switch {
	case patch.Status == dom.StatusCompleted && existing.Status != dom.StatusCompleted:
		completedAt := s.now()
		if in.CompletedAt != nil {
			completedAt = *in.CompletedAt
		}
		patch.CompletedAt = &completedAt
	case patch.Status != dom.StatusCompleted:
		patch.CompletedAt = nil
	case in.CompletedAt != nil:
		patch.CompletedAt = in.CompletedAt
	}

	if in.DocumentID.Set() {
		if err := s.checkDocument(ctx, in.DocumentID.ID()); err != nil {
			return dom.Deadline{}, err
		}
		patch.DocumentID = in.DocumentID.ID()
	}
	if in.ExpedienteID.Set() {
		if err := s.checkExpediente(ctx, in.ExpedienteID.ID()); err != nil {
			return dom.Deadline{}, err
		}
		patch.ExpedienteID = in.ExpedienteID.ID()
	}

	d, err := s.repo.Update(ctx, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Deadline{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return dom.Deadline{}, err
	}
	s.log.Info("deadline updated", "id", id)
	s.invalidateCache(ctx)
	return d, nil
}

func (s *DeadlineService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return err
	}
	s.log.Info("deadline deleted", "id", id)
	s.invalidateCache(ctx)
	return nil
}

// Complete marks a deadline COMPLETED and stamps completedAt.
func (s *DeadlineService) Complete(ctx context.Context, id string) (dom.Deadline, error) {
	completed := dom.StatusCompleted
	return s.Update(ctx, id, UpdateDeadlineInput{Status: &completed})
}

// SweepOverdue reclassifies every deadline whose due date has passed and
// which is neither completed nor already overdue. Idempotent: a second run
// with the same instant affects zero rows.
func (s *DeadlineService) SweepOverdue(ctx context.Context) (int64, error) {
	count, err := s.repo.MarkOverdue(ctx, s.now())
	if err != nil {
		return 0, err
	}
	metrics.SweepRuns.Inc()
	metrics.OverdueMarked.Add(float64(count))
	if count > 0 {
		s.log.Info("overdue sweep", "marked", count)
		s.invalidateCache(ctx)
	}
	return count, nil
}

// DeadlineType selects the calculation path for Calculate.
type DeadlineType string

const (
	DeadlineTypeBusinessHours DeadlineType = "BUSINESS_HOURS"
	DeadlineTypeCalendarDays  DeadlineType = "CALENDAR_DAYS"
)

// Calculation is the result of a due-date calculation from now.
type Calculation struct {
	DeadlineType DeadlineType
	Quantity     int
	StartDate    time.Time
	DueDate      time.Time
	CalculatedAt time.Time
}

// Calculate derives a due date from now. BUSINESS_HOURS counts hours spent
// inside the working window; CALENDAR_DAYS adds raw days with no adjustment
// for weekends or holidays.
func (s *DeadlineService) Calculate(typ DeadlineType, quantity int) (Calculation, error) {
	if quantity < minQuantity || quantity > maxQuantity {
		return Calculation{}, ErrInvalidQuantity
	}
	now := s.now()

	var dueDate time.Time
	switch typ {
	case DeadlineTypeBusinessHours:
		var err error
		dueDate, err = s.cal.AddBusinessHours(now, quantity)
		if err != nil {
			return Calculation{}, err
		}
	case DeadlineTypeCalendarDays:
		dueDate = now.Add(time.Duration(quantity) * 24 * time.Hour)
	default:
		return Calculation{}, ErrInvalidDeadlineType
	}

	return Calculation{
		DeadlineType: typ,
		Quantity:     quantity,
		StartDate:    now,
		DueDate:      dueDate,
		CalculatedAt: now,
	}, nil
}

func (s *DeadlineService) checkDocument(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	ok, err := s.docs.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, *id)
	}
	return nil
}

func (s *DeadlineService) checkExpediente(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	ok, err := s.exps.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrExpedienteNotFound, *id)
	}
	return nil
}

func (s *DeadlineService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func isDefaultFilter(f repo.DeadlineFilter) bool {
	return f.DocumentID == nil && f.ExpedienteID == nil && f.Status == nil &&
		f.Priority == nil && f.DueDateFrom == nil && f.DueDateTo == nil &&
		f.Page == 1 && f.Limit == defaultLimit
}
