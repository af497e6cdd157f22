package dropdown

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

func (h *Handler) Add(c *gin.Context) {
	var req AddOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.HTTPStatus, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// GetAll returns options grouped by type, or a single type with ?type=.
func (h *Handler) GetAll(c *gin.Context) {
	if optionType := c.Query("type"); optionType != "" {
		resp, err := h.service.GetByType(c.Request.Context(), optionType)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httpErr := apperror.InvalidField("id")
		response.Error(c, httpErr.HTTPStatus, httpErr.Code, httpErr.Message, nil)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
