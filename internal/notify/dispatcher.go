package notify

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/calendar"
	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/metrics"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/repo"

	"github.com/sony/gobreaker"
)

// Dispatcher scans for deadlines that warrant a notice and pushes them
// through the notifier. Every delivery is best-effort: a failed notification
// is logged and counted, never propagated. A circuit breaker keeps a dead
// notifier from being hammered on every sweep.
type Dispatcher struct {
	deadlines repo.DeadlineRepo
	notifier  Notifier
	cal       *calendar.Calendar
	lead      time.Duration
	log       *slog.Logger
	breaker   *gobreaker.CircuitBreaker
	now       func() time.Time
}

func NewDispatcher(deadlines repo.DeadlineRepo, notifier Notifier, cal *calendar.Calendar,
	lead time.Duration, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		deadlines: deadlines,
		notifier:  notifier,
		cal:       cal,
		lead:      lead,
		log:       log,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "deadline-notifier",
			Timeout: 5 * time.Minute,
		}),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithNow overrides the clock. Tests only.
func (d *Dispatcher) WithNow(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// Result summarizes one dispatch run.
type Result struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Run sends reminders for deadlines due within the lead window and notices
// for overdue ones. The whole run is gated on business hours: the deadline
// clock runs continuously but nobody wants a reminder at 03:00.
func (d *Dispatcher) Run(ctx context.Context) (Result, error) {
	now := d.now()
	if !d.cal.ShouldSendReminderNow(now) {
		d.log.Debug("outside business hours, skipping notification dispatch")
		return Result{}, nil
	}

	var res Result

	upcoming, err := d.deadlines.DueWithin(ctx, now, now.Add(d.lead))
	if err != nil {
		return res, fmt.Errorf("list upcoming deadlines: %w", err)
	}
	for _, dl := range upcoming {
		d.dispatch(ctx, dl, d.reminderNotification(dl, now), &res)
	}

	overdue, err := d.deadlines.ListOverdue(ctx)
	if err != nil {
		return res, fmt.Errorf("list overdue deadlines: %w", err)
	}
	for _, dl := range overdue {
		d.dispatch(ctx, dl, d.overdueNotification(dl, now), &res)
	}

	d.log.Info("notification dispatch finished",
		"sent", res.Sent, "failed", res.Failed, "skipped", res.Skipped)
	return res, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, dl dom.Deadline, n dom.Notification, res *Result) {
	recipient := recipientOf(dl)
	if recipient == "" {
		d.log.Warn("deadline has no responsible user, skipping notification", "deadline_id", dl.ID)
		res.Skipped++
		return
	}
	n.UserID = recipient

	_, err := d.breaker.Execute(func() (interface{}, error) {
		return nil, d.notifier.Notify(ctx, n)
	})
	if err != nil {
		d.log.Error("failed to send deadline notification",
			"deadline_id", dl.ID, "type", n.Type, "err", err)
		metrics.NotificationFailures.WithLabelValues(string(n.Type)).Inc()
		res.Failed++
		return
	}
	metrics.NotificationsSent.WithLabelValues(string(n.Type)).Inc()
	res.Sent++
}

func (d *Dispatcher) reminderNotification(dl dom.Deadline, now time.Time) dom.Notification {
	hoursUntil := int(math.Round(dl.DueDate.Sub(now).Hours()))
	return dom.Notification{
		Type:        dom.NotificationDeadlineReminder,
		Title:       fmt.Sprintf("[%s] Deadline approaching", dl.Priority),
		Message:     fmt.Sprintf("%s\n%s\nDue in %d hours", dl.Title, relatedName(dl), hoursUntil),
		RelatedID:   dl.ID,
		RelatedType: "deadline",
	}
}

func (d *Dispatcher) overdueNotification(dl dom.Deadline, now time.Time) dom.Notification {
	daysOverdue := int(now.Sub(dl.DueDate).Hours() / 24)
	plural := "s"
	if daysOverdue == 1 {
		plural = ""
	}
	return dom.Notification{
		Type:        dom.NotificationDeadlineOverdue,
		Title:       fmt.Sprintf("[%s] Deadline overdue", dl.Priority),
		Message:     fmt.Sprintf("%s\n%s\nOverdue by %d day%s", dl.Title, relatedName(dl), daysOverdue, plural),
		RelatedID:   dl.ID,
		RelatedType: "deadline",
	}
}

func recipientOf(dl dom.Deadline) string {
	if dl.Document != nil && dl.Document.ResponsibleUserID != nil {
		return *dl.Document.ResponsibleUserID
	}
	return ""
}

func relatedName(dl dom.Deadline) string {
	switch {
	case dl.Document != nil:
		return "Document: " + dl.Document.CorrelativeNumber
	case dl.Expediente != nil:
		return "Expediente: " + dl.Expediente.Code
	}
	return ""
}
