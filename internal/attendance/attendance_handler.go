package attendance

import (
	"net/http"
	"strconv"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
	"github.com/haiphamkd/quanlynhansu/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.HTTPStatus, httpErr.Code, httpErr.Message, nil)
}

// Scan resolves a raw badge payload into a pending check-in.
func (h *Handler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.HTTPStatus, mapped.Code, mapped.Message, err.Error())
		return
	}

	pending, err := h.service.ResolveScan(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pending, nil)
}

// CheckIn commits a confirmed pending check-in.
func (h *Handler) CheckIn(c *gin.Context) {
	var req CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.HTTPStatus, mapped.Code, mapped.Message, err.Error())
		return
	}

	rec, err := h.service.Commit(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, rec, nil)
}

// ManualCheckIn marks a slot present without a badge scan.
func (h *Handler) ManualCheckIn(c *gin.Context) {
	var req ManualCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.HTTPStatus, mapped.Code, mapped.Message, err.Error())
		return
	}

	rec, err := h.service.ManualCheckIn(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, rec, nil)
}

// Delete clears a slot and returns the empty cell the grid should show.
func (h *Handler) Delete(c *gin.Context) {
	employeeID := c.Query("employeeId")
	date := c.Query("date")
	shift := c.Query("shift")
	if employeeID == "" || date == "" || shift == "" {
		httpErr := apperror.RequiredField("employeeId, date, shift")
		response.Error(c, httpErr.HTTPStatus, httpErr.Code, httpErr.Message, nil)
		return
	}

	cell, err := h.service.Delete(c.Request.Context(), employeeID, date, shift)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cell, nil)
}

// Grid returns the two-shift daily grid for a date.
func (h *Handler) Grid(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httpErr := apperror.RequiredField("date")
		response.Error(c, httpErr.HTTPStatus, httpErr.Code, httpErr.Message, nil)
		return
	}

	rows, err := h.service.DailyGrid(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows, nil)
}

// SaveGrid bulk-saves the touched cells of a daily grid.
func (h *Handler) SaveGrid(c *gin.Context) {
	var req SaveGridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.HTTPStatus, mapped.Code, mapped.Message, err.Error())
		return
	}

	res, err := h.service.SaveGrid(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// History lists persisted check-in records, newest date first, paginated.
func (h *Handler) History(c *gin.Context) {
	rows, err := h.service.History(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if pageSize < 1 {
		pageSize = 50
	}

	total := int64(len(rows))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, rows[start:end], &meta)
}
