package repo

import (
	"context"

	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepo interface {
	Create(ctx context.Context, n dom.Notification) (dom.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]dom.Notification, error)
}

type PGNotificationRepo struct {
	db *pgxpool.Pool
}

func NewPGNotificationRepo(db *pgxpool.Pool) *PGNotificationRepo {
	return &PGNotificationRepo{db: db}
}

func (r *PGNotificationRepo) Create(ctx context.Context, n dom.Notification) (dom.Notification, error) {
	query := `
		INSERT INTO notifications (id, user_id, type, title, message, related_id, related_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, type, title, message, related_id, related_type, read_at, created_at`
	var out dom.Notification
	err := r.db.QueryRow(ctx, query,
		n.ID, n.UserID, n.Type, n.Title, n.Message, n.RelatedID, n.RelatedType,
	).Scan(
		&out.ID, &out.UserID, &out.Type, &out.Title, &out.Message,
		&out.RelatedID, &out.RelatedType, &out.ReadAt, &out.CreatedAt,
	)
	return out, err
}

func (r *PGNotificationRepo) ListByUser(ctx context.Context, userID string) ([]dom.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, related_id, related_type, read_at, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Notification
	for rows.Next() {
		var n dom.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
			&n.RelatedID, &n.RelatedType, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}
