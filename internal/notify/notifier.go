// Package notify delivers deadline reminders and overdue notices. Delivery
// is a side channel: it must never fail the state change that triggered it.
package notify

import (
	"context"

	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/repo"

	"github.com/google/uuid"
)

// Notifier is the external delivery collaborator.
type Notifier interface {
	Notify(ctx context.Context, n dom.Notification) error
}

// PGNotifier persists notifications to the notifications table, where the
// front end polls them. Email and WhatsApp channels hang off that table in
// other services.
type PGNotifier struct {
	repo repo.NotificationRepo
}

func NewPGNotifier(r repo.NotificationRepo) *PGNotifier {
	return &PGNotifier{repo: r}
}

func (p *PGNotifier) Notify(ctx context.Context, n dom.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	_, err := p.repo.Create(ctx, n)
	return err
}
