package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DeadlineFilter narrows List. Nil fields are not applied. Page is 1-based;
// Limit <= 0 means no pagination.
type DeadlineFilter struct {
	DocumentID   *string
	ExpedienteID *string
	Status       *dom.Status
	Priority     *dom.Priority
	DueDateFrom  *time.Time
	DueDateTo    *time.Time
	Page         int
	Limit        int
}

type DeadlineRepo interface {
	Create(ctx context.Context, d dom.Deadline) (dom.Deadline, error)
	GetByID(ctx context.Context, id string) (dom.Deadline, error)
	List(ctx context.Context, f DeadlineFilter) ([]dom.Deadline, int, error)
	Update(ctx context.Context, d dom.Deadline) (dom.Deadline, error)
	Delete(ctx context.Context, id string) error
	// MarkOverdue flips every row with due_date < now and status outside
	// {COMPLETED, OVERDUE} to OVERDUE and returns the affected count.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	// DueWithin lists deadlines due in [from, to] that are neither
	// completed nor already overdue.
	DueWithin(ctx context.Context, from, to time.Time) ([]dom.Deadline, error)
	ListOverdue(ctx context.Context) ([]dom.Deadline, error)
}

type PGDeadlineRepo struct {
	db *pgxpool.Pool
}

func NewPGDeadlineRepo(db *pgxpool.Pool) *PGDeadlineRepo {
	return &PGDeadlineRepo{db: db}
}

const deadlineColumns = `
	dl.id, dl.title, dl.description, dl.due_date, dl.priority, dl.status,
	dl.document_id, dl.expediente_id, dl.completed_at, dl.created_at, dl.updated_at,
	doc.id, doc.title, doc.correlative_number, doc.responsible_user_id,
	exp.id, exp.code, exp.title`

const deadlineJoins = `
	FROM deadlines dl
	LEFT JOIN documents doc ON doc.id = dl.document_id
	LEFT JOIN expedientes exp ON exp.id = dl.expediente_id`

// Listing order is fixed: open work first, then by due date.
const deadlineOrder = `
	ORDER BY CASE dl.status
		WHEN 'PENDING' THEN 0
		WHEN 'IN_PROGRESS' THEN 1
		WHEN 'COMPLETED' THEN 2
		WHEN 'OVERDUE' THEN 3
	END, dl.due_date ASC`

func (r *PGDeadlineRepo) Create(ctx context.Context, d dom.Deadline) (dom.Deadline, error) {
	query := `
		INSERT INTO deadlines (id, title, description, due_date, priority, status, document_id, expediente_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.Title, d.Description, d.DueDate, d.Priority, d.Status, d.DocumentID, d.ExpedienteID)
	if err != nil {
		return dom.Deadline{}, err
	}
	return r.GetByID(ctx, d.ID)
}

func (r *PGDeadlineRepo) GetByID(ctx context.Context, id string) (dom.Deadline, error) {
	query := `SELECT` + deadlineColumns + deadlineJoins + ` WHERE dl.id = $1`
	return scanDeadline(r.db.QueryRow(ctx, query, id))
}

func (r *PGDeadlineRepo) List(ctx context.Context, f DeadlineFilter) ([]dom.Deadline, int, error) {
	where, args := buildDeadlineWhere(f)

	var total int
	countQuery := `SELECT COUNT(*) FROM deadlines dl` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT` + deadlineColumns + deadlineJoins + where + deadlineOrder
	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, f.Limit, (page-1)*f.Limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	list, err := collectDeadlines(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *PGDeadlineRepo) Update(ctx context.Context, d dom.Deadline) (dom.Deadline, error) {
	query := `
		UPDATE deadlines
		SET title = $2, description = $3, due_date = $4, priority = $5, status = $6,
		    document_id = $7, expediente_id = $8, completed_at = $9, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		d.ID, d.Title, d.Description, d.DueDate, d.Priority, d.Status,
		d.DocumentID, d.ExpedienteID, d.CompletedAt)
	if err != nil {
		return dom.Deadline{}, err
	}
	if tag.RowsAffected() == 0 {
		return dom.Deadline{}, pgx.ErrNoRows
	}
	return r.GetByID(ctx, d.ID)
}

func (r *PGDeadlineRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM deadlines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGDeadlineRepo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE deadlines SET status = 'OVERDUE', updated_at = NOW()
		WHERE due_date < $1 AND status NOT IN ('COMPLETED', 'OVERDUE')`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PGDeadlineRepo) DueWithin(ctx context.Context, from, to time.Time) ([]dom.Deadline, error) {
	query := `SELECT` + deadlineColumns + deadlineJoins + `
		WHERE dl.due_date >= $1 AND dl.due_date <= $2
		  AND dl.status NOT IN ('COMPLETED', 'OVERDUE')` + deadlineOrder
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDeadlines(rows)
}

func (r *PGDeadlineRepo) ListOverdue(ctx context.Context) ([]dom.Deadline, error) {
	query := `SELECT` + deadlineColumns + deadlineJoins + `
		WHERE dl.status = 'OVERDUE'` + deadlineOrder
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDeadlines(rows)
}

func buildDeadlineWhere(f DeadlineFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.DocumentID != nil {
		add("dl.document_id = $%d", *f.DocumentID)
	}
	if f.ExpedienteID != nil {
		add("dl.expediente_id = $%d", *f.ExpedienteID)
	}
	if f.Status != nil {
		add("dl.status = $%d", *f.Status)
	}
	if f.Priority != nil {
		add("dl.priority = $%d", *f.Priority)
	}
	if f.DueDateFrom != nil {
		add("dl.due_date >= $%d", *f.DueDateFrom)
	}
	if f.DueDateTo != nil {
		add("dl.due_date <= $%d", *f.DueDateTo)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeadline(row rowScanner) (dom.Deadline, error) {
	var d dom.Deadline
	var docID, docTitle, docCorr, docResp *string
	var expID, expCode, expTitle *string
	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.DueDate, &d.Priority, &d.Status,
		&d.DocumentID, &d.ExpedienteID, &d.CompletedAt, &d.CreatedAt, &d.UpdatedAt,
		&docID, &docTitle, &docCorr, &docResp,
		&expID, &expCode, &expTitle,
	)
	if err != nil {
		return dom.Deadline{}, err
	}
	if docID != nil {
		d.Document = &dom.DocumentSummary{
			ID:                *docID,
			Title:             deref(docTitle),
			CorrelativeNumber: deref(docCorr),
			ResponsibleUserID: docResp,
		}
	}
	if expID != nil {
		d.Expediente = &dom.ExpedienteSummary{
			ID:    *expID,
			Code:  deref(expCode),
			Title: deref(expTitle),
		}
	}
	return d, nil
}

func collectDeadlines(rows pgx.Rows) ([]dom.Deadline, error) {
	var list []dom.Deadline
	for rows.Next() {
		d, err := scanDeadline(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
