package repo

import (
	"context"

	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Documents and expedientes are owned by other services; this service only
// needs existence checks when linking a deadline and summary projections on
// reads.

type DocumentRepo interface {
	Exists(ctx context.Context, id string) (bool, error)
	GetSummary(ctx context.Context, id string) (dom.DocumentSummary, error)
}

type ExpedienteRepo interface {
	Exists(ctx context.Context, id string) (bool, error)
	GetSummary(ctx context.Context, id string) (dom.ExpedienteSummary, error)
}

type PGDocumentRepo struct {
	db *pgxpool.Pool
}

func NewPGDocumentRepo(db *pgxpool.Pool) *PGDocumentRepo {
	return &PGDocumentRepo{db: db}
}

func (r *PGDocumentRepo) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *PGDocumentRepo) GetSummary(ctx context.Context, id string) (dom.DocumentSummary, error) {
	query := `SELECT id, title, correlative_number, responsible_user_id FROM documents WHERE id = $1`
	var s dom.DocumentSummary
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Title, &s.CorrelativeNumber, &s.ResponsibleUserID)
	return s, err
}

type PGExpedienteRepo struct {
	db *pgxpool.Pool
}

func NewPGExpedienteRepo(db *pgxpool.Pool) *PGExpedienteRepo {
	return &PGExpedienteRepo{db: db}
}

func (r *PGExpedienteRepo) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM expedientes WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *PGExpedienteRepo) GetSummary(ctx context.Context, id string) (dom.ExpedienteSummary, error) {
	query := `SELECT id, code, title FROM expedientes WHERE id = $1`
	var s dom.ExpedienteSummary
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Code, &s.Title)
	return s, err
}
