package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/calendar"
	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/repo"

	"github.com/stretchr/testify/suite"
)

// Monday 2025-11-03 10:00 UTC, inside the default working window.
var testNow = time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)

type DeadlineServiceSuite struct {
	suite.Suite
	svc  *DeadlineService
	repo *repo.MemDeadlineRepo
	docs *repo.MemDocumentRepo
	exps *repo.MemExpedienteRepo
	ctx  context.Context
}

func (s *DeadlineServiceSuite) SetupTest() {
	s.docs = repo.NewMemDocumentRepo()
	s.exps = repo.NewMemExpedienteRepo()
	s.repo = repo.NewMemDeadlineRepo(s.docs, s.exps)
	s.ctx = context.Background()

	cal, err := calendar.New(calendar.DefaultConfig())
	s.Require().NoError(err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.svc = NewDeadlineService(s.repo, s.docs, s.exps, nil, cal, log).
		WithNow(func() time.Time { return testNow })
}

func TestDeadlineServiceSuite(t *testing.T) {
	suite.Run(t, new(DeadlineServiceSuite))
}

func (s *DeadlineServiceSuite) create(title string, due time.Time) dom.Deadline {
	d, err := s.svc.Create(s.ctx, CreateDeadlineInput{Title: title, DueDate: due})
	s.Require().NoError(err)
	return d
}

func (s *DeadlineServiceSuite) TestCreateDefaults() {
	d := s.create("  Review decree  ", testNow.Add(48*time.Hour))

	s.Equal("Review decree", d.Title)
	s.Equal(dom.StatusPending, d.Status)
	s.Equal(dom.PriorityMedium, d.Priority)
	s.NotEmpty(d.ID)
	s.Nil(d.CompletedAt)
}

func (s *DeadlineServiceSuite) TestCreateValidation() {
	s.Run("empty title rejected", func() {
		_, err := s.svc.Create(s.ctx, CreateDeadlineInput{Title: "   ", DueDate: testNow})
		s.Require().ErrorIs(err, ErrEmptyTitle)
	})

	s.Run("invalid priority rejected", func() {
		bad := dom.Priority("WHENEVER")
		_, err := s.svc.Create(s.ctx, CreateDeadlineInput{Title: "t", DueDate: testNow, Priority: &bad})
		s.Require().ErrorIs(err, ErrInvalidPriority)
	})
}

func (s *DeadlineServiceSuite) TestCreateReferenceIntegrity() {
	missing := "nonexistent"

	_, err := s.svc.Create(s.ctx, CreateDeadlineInput{
		Title: "t", DueDate: testNow, DocumentID: &missing,
	})
	s.Require().ErrorIs(err, ErrDocumentNotFound)

	_, err = s.svc.Create(s.ctx, CreateDeadlineInput{
		Title: "t", DueDate: testNow, ExpedienteID: &missing,
	})
	s.Require().ErrorIs(err, ErrExpedienteNotFound)

	// Failed creates must leave no record behind.
	res, err := s.svc.List(s.ctx, repo.DeadlineFilter{})
	s.Require().NoError(err)
	s.Zero(res.Total)
}

func (s *DeadlineServiceSuite) TestCreateAttachesSummaries() {
	resp := "user-1"
	s.docs.Put(dom.DocumentSummary{ID: "doc-1", Title: "Decree 12", CorrelativeNumber: "MIN-2025-0012", ResponsibleUserID: &resp})
	docID := "doc-1"

	d, err := s.svc.Create(s.ctx, CreateDeadlineInput{Title: "t", DueDate: testNow, DocumentID: &docID})
	s.Require().NoError(err)
	s.Require().NotNil(d.Document)
	s.Equal("MIN-2025-0012", d.Document.CorrelativeNumber)
}

func (s *DeadlineServiceSuite) TestGetByIDNotFound() {
	_, err := s.svc.GetByID(s.ctx, "missing")
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *DeadlineServiceSuite) TestUpdateFields() {
	d := s.create("orig", testNow.Add(time.Hour))

	title := "renamed"
	high := dom.PriorityHigh
	got, err := s.svc.Update(s.ctx, d.ID, UpdateDeadlineInput{Title: &title, Priority: &high})
	s.Require().NoError(err)
	s.Equal("renamed", got.Title)
	s.Equal(dom.PriorityHigh, got.Priority)
	s.Equal(d.DueDate, got.DueDate)
}

func (s *DeadlineServiceSuite) TestUpdateCompletedAtTracking() {
	d := s.create("t", testNow.Add(time.Hour))

	completed := dom.StatusCompleted
	got, err := s.svc.Update(s.ctx, d.ID, UpdateDeadlineInput{Status: &completed})
	s.Require().NoError(err)
	s.Require().NotNil(got.CompletedAt)
	s.Equal(testNow, *got.CompletedAt)

	// Permissive escape hatch: leaving COMPLETED clears the stamp.
	pending := dom.StatusPending
	got, err = s.svc.Update(s.ctx, d.ID, UpdateDeadlineInput{Status: &pending})
	s.Require().NoError(err)
	s.Equal(dom.StatusPending, got.Status)
	s.Nil(got.CompletedAt)
}

func (s *DeadlineServiceSuite) TestUpdateRelationTriState() {
	s.docs.Put(dom.DocumentSummary{ID: "doc-1", Title: "Decree"})
	docID := "doc-1"
	d, err := s.svc.Create(s.ctx, CreateDeadlineInput{Title: "t", DueDate: testNow, DocumentID: &docID})
	s.Require().NoError(err)

	s.Run("omitted field is unchanged", func() {
		title := "still linked"
		got, err := s.svc.Update(s.ctx, d.ID, UpdateDeadlineInput{Title: &title})
		s.Require().NoError(err)
		s.Require().NotNil(got.DocumentID)
		s.Equal("doc-1", *got.DocumentID)
	})

	s.Run("explicit clear disconnects", func() {
		got, err := s.svc.Update(s.ctx, d.ID, UpdateDeadlineInput{DocumentID: RelClear()})
		s.Require().NoError(err)
		s.Nil(got.DocumentID)
		s.Nil(got.Document)
	})

	s.Run("connect validates existence", func() {
		_, err := s.svc.Update(s.ctx, d.ID, UpdateDeadlineInput{DocumentID: RelTo("ghost")})
		s.Require().ErrorIs(err, ErrDocumentNotFound)
	})
}

func (s *DeadlineServiceSuite) TestDelete() {
	d := s.create("t", testNow)

	s.Require().NoError(s.svc.Delete(s.ctx, d.ID))
	s.Require().ErrorIs(s.svc.Delete(s.ctx, d.ID), ErrNotFound)
}

func (s *DeadlineServiceSuite) TestCompleteIsTerminalForSweep() {
	d := s.create("t", testNow.Add(-time.Hour))

	got, err := s.svc.Complete(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Equal(dom.StatusCompleted, got.Status)
	s.Require().NotNil(got.CompletedAt)

	// A sweep long after the due date must not touch a completed record.
	s.svc.WithNow(func() time.Time { return testNow.Add(365 * 24 * time.Hour) })
	count, err := s.svc.SweepOverdue(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	got, err = s.svc.GetByID(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Equal(dom.StatusCompleted, got.Status)
}

func (s *DeadlineServiceSuite) TestSweepIdempotent() {
	s.create("late 1", testNow.Add(-2*time.Hour))
	s.create("late 2", testNow.Add(-time.Minute))
	s.create("on time", testNow.Add(time.Hour))

	count, err := s.svc.SweepOverdue(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(2, count)

	count, err = s.svc.SweepOverdue(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	res, err := s.svc.List(s.ctx, repo.DeadlineFilter{})
	s.Require().NoError(err)
	s.Equal(3, res.Total)
}

func (s *DeadlineServiceSuite) TestSweepUsesInjectedClock() {
	d := s.create("due soon", testNow.Add(time.Hour))

	count, err := s.svc.SweepOverdue(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	s.svc.WithNow(func() time.Time { return testNow.Add(2 * time.Hour) })
	count, err = s.svc.SweepOverdue(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(1, count)

	got, err := s.svc.GetByID(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Equal(dom.StatusOverdue, got.Status)
}

func (s *DeadlineServiceSuite) TestListOrderingAndFilters() {
	inProgress := dom.StatusInProgress
	overdueDue := testNow.Add(-time.Hour)

	a := s.create("pending late", testNow.Add(3*time.Hour))
	b := s.create("pending early", testNow.Add(time.Hour))
	c := s.create("in progress", testNow.Add(2*time.Hour))
	_, err := s.svc.Update(s.ctx, c.ID, UpdateDeadlineInput{Status: &inProgress})
	s.Require().NoError(err)
	d := s.create("overdue", overdueDue)
	_, err = s.svc.SweepOverdue(s.ctx)
	s.Require().NoError(err)

	res, err := s.svc.List(s.ctx, repo.DeadlineFilter{})
	s.Require().NoError(err)
	s.Require().Len(res.Items, 4)
	s.Equal(b.ID, res.Items[0].ID) // PENDING by due date
	s.Equal(a.ID, res.Items[1].ID)
	s.Equal(c.ID, res.Items[2].ID) // IN_PROGRESS
	s.Equal(d.ID, res.Items[3].ID) // OVERDUE last

	status := dom.StatusPending
	res, err = s.svc.List(s.ctx, repo.DeadlineFilter{Status: &status})
	s.Require().NoError(err)
	s.Len(res.Items, 2)
	s.Equal(2, res.Total)

	from := testNow.Add(90 * time.Minute)
	res, err = s.svc.List(s.ctx, repo.DeadlineFilter{DueDateFrom: &from})
	s.Require().NoError(err)
	s.Len(res.Items, 2) // inclusive bounds: 2h and 3h out
}

func (s *DeadlineServiceSuite) TestListPagination() {
	for i := 0; i < 5; i++ {
		s.create("t", testNow.Add(time.Duration(i)*time.Hour))
	}

	res, err := s.svc.List(s.ctx, repo.DeadlineFilter{Page: 2, Limit: 2})
	s.Require().NoError(err)
	s.Len(res.Items, 2)
	s.Equal(5, res.Total)
	s.Equal(2, res.Page)
	s.Equal(2, res.Limit)
}

func (s *DeadlineServiceSuite) TestCalculateBusinessHours() {
	// Friday 2025-11-07 17:30: two business hours land on Monday 09:00.
	friday := time.Date(2025, time.November, 7, 17, 30, 0, 0, time.UTC)
	s.svc.WithNow(func() time.Time { return friday })

	calc, err := s.svc.Calculate(DeadlineTypeBusinessHours, 2)
	s.Require().NoError(err)
	s.Equal(time.Date(2025, time.November, 10, 9, 0, 0, 0, time.UTC), calc.DueDate)
	s.Equal(friday, calc.StartDate)
}

func (s *DeadlineServiceSuite) TestCalculateCalendarDaysSkipsNothing() {
	// Calendar days from a Friday cross the weekend untouched: exactly 72h.
	friday := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)
	s.svc.WithNow(func() time.Time { return friday })

	calc, err := s.svc.Calculate(DeadlineTypeCalendarDays, 3)
	s.Require().NoError(err)
	s.Equal(friday.Add(72*time.Hour), calc.DueDate)
	s.Equal(time.Monday, calc.DueDate.Weekday())

	// The business-hours path must land somewhere else entirely.
	bus, err := s.svc.Calculate(DeadlineTypeBusinessHours, 3)
	s.Require().NoError(err)
	s.NotEqual(calc.DueDate, bus.DueDate)
}

func (s *DeadlineServiceSuite) TestCalculateSamplesClockOnce() {
	// A clock that jumps between reads must not leak into the response:
	// startDate and calculatedAt describe the same instant.
	tick := testNow
	s.svc.WithNow(func() time.Time {
		t := tick
		tick = tick.Add(time.Second)
		return t
	})

	calc, err := s.svc.Calculate(DeadlineTypeCalendarDays, 1)
	s.Require().NoError(err)
	s.Equal(testNow, calc.StartDate)
	s.Equal(calc.StartDate, calc.CalculatedAt)
}

func (s *DeadlineServiceSuite) TestCalculateValidation() {
	_, err := s.svc.Calculate(DeadlineTypeBusinessHours, 0)
	s.Require().ErrorIs(err, ErrInvalidQuantity)

	_, err = s.svc.Calculate(DeadlineTypeBusinessHours, 1001)
	s.Require().ErrorIs(err, ErrInvalidQuantity)

	_, err = s.svc.Calculate("SIDEREAL_DAYS", 5)
	s.Require().ErrorIs(err, ErrInvalidDeadlineType)
}
