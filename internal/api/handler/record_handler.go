package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-tracker/internal/api/metrics"
	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

// RecordHandler handles HTTP requests for one record kind. The router
// registers one instance for income and one for expenses.
type RecordHandler struct {
	service ports.RecordService
	kind    domain.RecordKind
}

func NewRecordHandler(service ports.RecordService, kind domain.RecordKind) *RecordHandler {
	return &RecordHandler{service: service, kind: kind}
}

// List handles GET /v1/{income,expenses}?from=&to=.
//
// @Summary      List the caller's records
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Inclusive range start (YYYY-MM-DD)"
// @Param        to    query     string  false  "Inclusive range end (YYYY-MM-DD)"
// @Success      200   {object}  listRecordsResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/income [get]
func (h *RecordHandler) List(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), ports.ListRecordsInput{
		Owner: email,
		Kind:  h.kind,
		From:  from,
		To:    to,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(records))
}

// Create handles POST /v1/{income,expenses}.
//
// @Summary      Create a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRecordRequest  true  "Record details"
// @Success      201   {object}  recordResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/income [post]
func (h *RecordHandler) Create(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	// Validated against dateLayout already; parse cannot fail here.
	date, _ := time.Parse(dateLayout, req.Date)

	record, err := h.service.Create(c.Request().Context(), ports.CreateRecordInput{
		Owner:       email,
		Kind:        h.kind,
		Amount:      req.Amount,
		Date:        date,
		Category:    req.Category,
		Cadence:     req.Cadence,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues(string(h.kind)).Inc()
	return c.JSON(http.StatusCreated, toRecordResponse(record))
}

// Update handles PATCH /v1/{income,expenses}/:id.
//
// @Summary      Partially update an owned record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Record id"
// @Param        body  body      updateRecordRequest  true  "Fields to change"
// @Success      200   {object}  recordResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/income/{id} [patch]
func (h *RecordHandler) Update(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	var req updateRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}
	if req.Amount == nil && req.Date == nil && req.Category == nil && req.Cadence == nil && req.Description == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "no fields to update"})
	}

	input := ports.UpdateRecordInput{
		ID:          id,
		Owner:       email,
		Kind:        h.kind,
		Amount:      req.Amount,
		Category:    req.Category,
		Cadence:     req.Cadence,
		Description: req.Description,
	}
	if req.Date != nil {
		date, _ := time.Parse(dateLayout, *req.Date)
		input.Date = &date
	}

	record, err := h.service.Update(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			// Not-found, not forbidden: a guessed id must not confirm
			// another user's record exists.
			return c.JSON(http.StatusNotFound, errorResponse{Error: "record not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toRecordResponse(record))
}

// Delete handles DELETE /v1/{income,expenses}/:id.
//
// @Summary      Delete an owned record
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Record id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/income/{id} [delete]
func (h *RecordHandler) Delete(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), ports.DeleteRecordInput{
		ID:    id,
		Owner: email,
		Kind:  h.kind,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "record not found"})
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func recordID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}
	return id, nil
}

// parseDateRange reads optional from/to query parameters. Zero times mean
// unbounded; the range is inclusive on both ends.
func parseDateRange(c echo.Context) (from, to time.Time, err error) {
	if raw := c.QueryParam("from"); raw != "" {
		from, err = time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "from must be a date in YYYY-MM-DD format")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err = time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "to must be a date in YYYY-MM-DD format")
		}
	}
	return from, to, nil
}
