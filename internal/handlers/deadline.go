package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	dom "github.com/dannykpan999-web/ministerial-command-center-sub002/internal/domain"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/dto"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/notify"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/repo"
	"github.com/dannykpan999-web/ministerial-command-center-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

type DeadlineHandler struct {
	svc  *service.DeadlineService
	disp *notify.Dispatcher
}

func NewDeadlineHandler(svc *service.DeadlineService, disp *notify.Dispatcher) *DeadlineHandler {
	return &DeadlineHandler{svc: svc, disp: disp}
}

// Create godoc
// @Summary      Create a deadline
// @Tags         deadlines
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateDeadlineRequest  true  "Deadline body"
// @Success      201   {object}  dto.DeadlineResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /deadlines [post]
func (h *DeadlineHandler) Create(c *gin.Context) {
	var req dto.CreateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	due := req.DueDate.Ptr()
	if due == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dueDate is required"})
		return
	}

	in := service.CreateDeadlineInput{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      *due,
		DocumentID:   req.DocumentID,
		ExpedienteID: req.ExpedienteID,
	}
	if req.Priority != nil {
		p := dom.Priority(*req.Priority)
		in.Priority = &p
	}
	if req.Status != nil {
		s := dom.Status(*req.Status)
		in.Status = &s
	}

	d, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deadlineToResponse(d))
}

// List godoc
// @Summary      List deadlines with optional filters
// @Tags         deadlines
// @Produce      json
// @Param        documentId    query  string  false  "Filter by document"
// @Param        expedienteId  query  string  false  "Filter by expediente"
// @Param        status        query  string  false  "Filter by status"
// @Param        priority      query  string  false  "Filter by priority"
// @Param        dueDateFrom   query  string  false  "Due date lower bound (inclusive)"
// @Param        dueDateTo     query  string  false  "Due date upper bound (inclusive)"
// @Param        page          query  int     false  "Page (1-based)"
// @Param        limit         query  int     false  "Page size (max 200)"
// @Success      200  {object}  dto.ListDeadlinesResponse
// @Failure      400  {object}  map[string]string
// @Router       /deadlines [get]
func (h *DeadlineHandler) List(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}
	res, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListDeadlinesResponse{
		Items: deadlinesToResponses(res.Items),
		Total: res.Total,
		Page:  res.Page,
		Limit: res.Limit,
	})
}

// GetByID godoc
// @Summary      Get a deadline by ID
// @Tags         deadlines
// @Produce      json
// @Param        id   path      string  true  "Deadline ID"
// @Success      200  {object}  dto.DeadlineResponse
// @Failure      404  {object}  map[string]string
// @Router       /deadlines/{id} [get]
func (h *DeadlineHandler) GetByID(c *gin.Context) {
	d, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deadlineToResponse(d))
}

// Update godoc
// @Summary      Update a deadline
// @Tags         deadlines
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Deadline ID"
// @Param        body  body      dto.UpdateDeadlineRequest  true  "Partial update"
// @Success      200   {object}  dto.DeadlineResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /deadlines/{id} [patch]
func (h *DeadlineHandler) Update(c *gin.Context) {
	var req dto.UpdateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := service.UpdateDeadlineInput{
		Title:       req.Title,
		Description: req.Description,
		CompletedAt: req.CompletedAt,
	}
	if req.DueDate != nil {
		due := req.DueDate.Ptr()
		if due == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dueDate must not be null"})
			return
		}
		in.DueDate = due
	}
	if req.Priority != nil {
		p := dom.Priority(*req.Priority)
		in.Priority = &p
	}
	if req.Status != nil {
		s := dom.Status(*req.Status)
		in.Status = &s
	}
	in.DocumentID = toRel(req.DocumentID)
	in.ExpedienteID = toRel(req.ExpedienteID)

	d, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deadlineToResponse(d))
}

// Delete godoc
// @Summary      Delete a deadline
// @Tags         deadlines
// @Produce      json
// @Param        id   path      string  true  "Deadline ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  map[string]string
// @Router       /deadlines/{id} [delete]
func (h *DeadlineHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deadline deleted successfully"})
}

// Complete godoc
// @Summary      Mark a deadline as completed
// @Tags         deadlines
// @Produce      json
// @Param        id   path      string  true  "Deadline ID"
// @Success      200  {object}  dto.DeadlineResponse
// @Failure      404  {object}  map[string]string
// @Router       /deadlines/{id}/complete [post]
func (h *DeadlineHandler) Complete(c *gin.Context) {
	d, err := h.svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deadlineToResponse(d))
}

// UpdateOverdue godoc
// @Summary      Reclassify past-due deadlines as overdue
// @Tags         deadlines
// @Produce      json
// @Success      200  {object}  dto.SweepResponse
// @Router       /deadlines/update-overdue [post]
func (h *DeadlineHandler) UpdateOverdue(c *gin.Context) {
	count, err := h.svc.SweepOverdue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.SweepResponse{Count: count})
}

// CheckNotifications godoc
// @Summary      Trigger the reminder dispatch sweep
// @Tags         deadlines
// @Produce      json
// @Success      200  {object}  notify.Result
// @Router       /deadlines/check-notifications [post]
func (h *DeadlineHandler) CheckNotifications(c *gin.Context) {
	res, err := h.disp.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Calculate godoc
// @Summary      Calculate a due date from now
// @Tags         deadlines
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CalculateDeadlineRequest  true  "Calculation request"
// @Success      200   {object}  dto.CalculationResponse
// @Failure      400   {object}  map[string]string
// @Router       /deadlines/calculate [post]
func (h *DeadlineHandler) Calculate(c *gin.Context) {
	var req dto.CalculateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	calc, err := h.svc.Calculate(service.DeadlineType(req.DeadlineType), req.Quantity)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CalculationResponse{
		DeadlineType: string(calc.DeadlineType),
		Quantity:     calc.Quantity,
		StartDate:    calc.StartDate.Format(time.RFC3339),
		DueDate:      calc.DueDate.Format(time.RFC3339),
		CalculatedAt: calc.CalculatedAt.Format(time.RFC3339),
	})
}

func parseFilter(c *gin.Context) (repo.DeadlineFilter, bool) {
	var f repo.DeadlineFilter

	if v := c.Query("documentId"); v != "" {
		f.DocumentID = &v
	}
	if v := c.Query("expedienteId"); v != "" {
		f.ExpedienteID = &v
	}
	if v := c.Query("status"); v != "" {
		s := dom.Status(v)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return f, false
		}
		f.Status = &s
	}
	if v := c.Query("priority"); v != "" {
		p := dom.Priority(v)
		if !p.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority filter"})
			return f, false
		}
		f.Priority = &p
	}
	var ok bool
	if f.DueDateFrom, ok = parseTimeQuery(c, "dueDateFrom"); !ok {
		return f, false
	}
	if f.DueDateTo, ok = parseTimeQuery(c, "dueDateTo"); !ok {
		return f, false
	}
	if f.Page, ok = parseIntQuery(c, "page"); !ok {
		return f, false
	}
	if f.Limit, ok = parseIntQuery(c, "limit"); !ok {
		return f, false
	}
	return f, true
}

func parseTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": name + ": use date (YYYY-MM-DD) or RFC3339 datetime"})
	return nil, false
}

func parseIntQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return n, true
}

func toRel(o dto.OptionalString) service.Rel {
	if !o.Present {
		return service.Rel{}
	}
	if o.Value == nil {
		return service.RelClear()
	}
	return service.RelTo(*o.Value)
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrDocumentNotFound),
		errors.Is(err, service.ErrExpedienteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyTitle),
		errors.Is(err, service.ErrInvalidPriority),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidDeadlineType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func deadlineToResponse(d dom.Deadline) dto.DeadlineResponse {
	out := dto.DeadlineResponse{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		DueDate:      d.DueDate,
		Priority:     string(d.Priority),
		Status:       string(d.Status),
		DocumentID:   d.DocumentID,
		ExpedienteID: d.ExpedienteID,
		CompletedAt:  d.CompletedAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.Document != nil {
		out.Document = &dto.DocumentSummaryResponse{
			ID:                d.Document.ID,
			Title:             d.Document.Title,
			CorrelativeNumber: d.Document.CorrelativeNumber,
		}
	}
	if d.Expediente != nil {
		out.Expediente = &dto.ExpedienteSummaryResponse{
			ID:    d.Expediente.ID,
			Code:  d.Expediente.Code,
			Title: d.Expediente.Title,
		}
	}
	return out
}

func deadlinesToResponses(list []dom.Deadline) []dto.DeadlineResponse {
	out := make([]dto.DeadlineResponse, len(list))
	for i := range list {
		out[i] = deadlineToResponse(list[i])
	}
	return out
}
