package fund

import (
	"net/http"

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

// Record appends a fund transaction.
func (h *Handler) Record(c *gin.Context) {
	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.HTTPStatus, mapped.Code, mapped.Message, err.Error())
		return
	}

	txn, err := h.service.Record(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, txn, nil)
}

// GetAll lists the full ledger in append order.
func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows, nil)
}

// Summary returns income/expense totals for ?from=&to= plus the global
// current balance.
func (h *Handler) Summary(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		httpErr := apperror.RequiredField("from, to")
		response.Error(c, httpErr.HTTPStatus, httpErr.Code, httpErr.Message, nil)
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary, nil)
}
