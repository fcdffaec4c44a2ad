package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"

	"github.com/jackc/pgx/v5"
)

// In-memory implementations backing unit tests and local development without
// Postgres. They mirror the PG repos' behavior, including pgx.ErrNoRows for
// missing records.

type MemDeadlineRepo struct {
	mu    sync.Mutex
	items map[string]dom.Deadline
	docs  *MemDocumentRepo
	exps  *MemExpedienteRepo
}

// NewMemDeadlineRepo creates an empty in-memory deadline store. docs and exps
// may be nil; when set, summary projections are attached on reads like the PG
// repo's joins do.
func NewMemDeadlineRepo(docs *MemDocumentRepo, exps *MemExpedienteRepo) *MemDeadlineRepo {
	return &MemDeadlineRepo{items: make(map[string]dom.Deadline), docs: docs, exps: exps}
}

func (r *MemDeadlineRepo) Create(_ context.Context, d dom.Deadline) (dom.Deadline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	r.items[d.ID] = d
	return r.project(d), nil
}

func (r *MemDeadlineRepo) GetByID(_ context.Context, id string) (dom.Deadline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok {
		return dom.Deadline{}, pgx.ErrNoRows
	}
	return r.project(d), nil
}

func (r *MemDeadlineRepo) List(_ context.Context, f DeadlineFilter) ([]dom.Deadline, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list []dom.Deadline
	for _, d := range r.items {
		if matchesFilter(d, f) {
			list = append(list, r.project(d))
		}
	}
	sortDeadlines(list)
	total := len(list)

	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.Limit
		if start > len(list) {
			start = len(list)
		}
		end := start + f.Limit
		if end > len(list) {
			end = len(list)
		}
		list = list[start:end]
	}
	return list, total, nil
}

func (r *MemDeadlineRepo) Update(_ context.Context, d dom.Deadline) (dom.Deadline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[d.ID]
	if !ok {
		return dom.Deadline{}, pgx.ErrNoRows
	}
	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = time.Now().UTC()
	r.items[d.ID] = d
	return r.project(d), nil
}

func (r *MemDeadlineRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *MemDeadlineRepo) MarkOverdue(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for id, d := range r.items {
		if d.DueDate.Before(now) && d.Status != dom.StatusCompleted && d.Status != dom.StatusOverdue {
			d.Status = dom.StatusOverdue
			d.UpdatedAt = time.Now().UTC()
			r.items[id] = d
			count++
		}
	}
	return count, nil
}

func (r *MemDeadlineRepo) DueWithin(_ context.Context, from, to time.Time) ([]dom.Deadline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []dom.Deadline
	for _, d := range r.items {
		if d.Status == dom.StatusCompleted || d.Status == dom.StatusOverdue {
			continue
		}
		if !d.DueDate.Before(from) && !d.DueDate.After(to) {
			list = append(list, r.project(d))
		}
	}
	sortDeadlines(list)
	return list, nil
}

func (r *MemDeadlineRepo) ListOverdue(_ context.Context) ([]dom.Deadline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []dom.Deadline
	for _, d := range r.items {
		if d.Status == dom.StatusOverdue {
			list = append(list, r.project(d))
		}
	}
	sortDeadlines(list)
	return list, nil
}

func (r *MemDeadlineRepo) project(d dom.Deadline) dom.Deadline {
	if r.docs != nil && d.DocumentID != nil {
		if s, ok := r.docs.get(*d.DocumentID); ok {
			d.Document = &s
		}
	}
	if r.exps != nil && d.ExpedienteID != nil {
		if s, ok := r.exps.get(*d.ExpedienteID); ok {
			d.Expediente = &s
		}
	}
	return d
}

func matchesFilter(d dom.Deadline, f DeadlineFilter) bool {
	if f.DocumentID != nil && (d.DocumentID == nil || *d.DocumentID != *f.DocumentID) {
		return false
	}
	if f.ExpedienteID != nil && (d.ExpedienteID == nil || *d.ExpedienteID != *f.ExpedienteID) {
		return false
	}
	if f.Status != nil && d.Status != *f.Status {
		return false
	}
	if f.Priority != nil && d.Priority != *f.Priority {
		return false
	}
	if f.DueDateFrom != nil && d.DueDate.Before(*f.DueDateFrom) {
		return false
	}
	if f.DueDateTo != nil && d.DueDate.After(*f.DueDateTo) {
		return false
	}
	return true
}

func sortDeadlines(list []dom.Deadline) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Status.SortIndex() != list[j].Status.SortIndex() {
			return list[i].Status.SortIndex() < list[j].Status.SortIndex()
		}
		return list[i].DueDate.Before(list[j].DueDate)
	})
}

type MemDocumentRepo struct {
	mu    sync.Mutex
	items map[string]dom.DocumentSummary
}

func NewMemDocumentRepo() *MemDocumentRepo {
	return &MemDocumentRepo{items: make(map[string]dom.DocumentSummary)}
}

func (r *MemDocumentRepo) Put(s dom.DocumentSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = s
}

func (r *MemDocumentRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.get(id)
	return ok, nil
}

func (r *MemDocumentRepo) GetSummary(_ context.Context, id string) (dom.DocumentSummary, error) {
	s, ok := r.get(id)
	if !ok {
		return dom.DocumentSummary{}, pgx.ErrNoRows
	}
	return s, nil
}

func (r *MemDocumentRepo) get(id string) (dom.DocumentSummary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	return s, ok
}

type MemExpedienteRepo struct {
	mu    sync.Mutex
	items map[string]dom.ExpedienteSummary
}

func NewMemExpedienteRepo() *MemExpedienteRepo {
	return &MemExpedienteRepo{items: make(map[string]dom.ExpedienteSummary)}
}

func (r *MemExpedienteRepo) Put(s dom.ExpedienteSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = s
}

func (r *MemExpedienteRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.get(id)
	return ok, nil
}

func (r *MemExpedienteRepo) GetSummary(_ context.Context, id string) (dom.ExpedienteSummary, error) {
	s, ok := r.get(id)
	if !ok {
		return dom.ExpedienteSummary{}, pgx.ErrNoRows
	}
	return s, nil
}

func (r *MemExpedienteRepo) get(id string) (dom.ExpedienteSummary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	return s, ok
}

type MemNotificationRepo struct {
	mu    sync.Mutex
	items []dom.Notification
}

func NewMemNotificationRepo() *MemNotificationRepo {
	return &MemNotificationRepo{}
}

func (r *MemNotificationRepo) Create(_ context.Context, n dom.Notification) (dom.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.CreatedAt = time.Now().UTC()
	r.items = append(r.items, n)
	return n, nil
}

func (r *MemNotificationRepo) ListByUser(_ context.Context, userID string) ([]dom.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []dom.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			list = append(list, n)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// All returns every stored notification. Tests only.
func (r *MemNotificationRepo) All() []dom.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]dom.Notification, len(r.items))
	copy(out, r.items)
	return out
}
