package gateway

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
)

// Handler exposes the single-endpoint legacy surface. Old clients POST
// {"action": "...", ...fields} and read either the bare result or
// {"error": "..."} from a 200 response, so errors are reported in-band.
type Handler struct {
	router *Router
	logger *zap.Logger
}

func NewHandler(router *Router, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("gateway.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &Handler{router: router, logger: l}
}

func (h *Handler) Exec(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "Không đọc được nội dung yêu cầu"})
		return
	}

	action, err := ParseAction(body)
	if err != nil {
		h.logger.Warn("rejected legacy request", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"error": "Yêu cầu không hợp lệ: " + err.Error()})
		return
	}

	result, err := h.router.Dispatch(c.Request.Context(), action)
	if err != nil {
		mapped := apperror.ToHTTP(err)
		h.logger.Warn("legacy action failed",
			zap.String("action", action.actionName()),
			zap.String("code", mapped.Code),
			zap.Error(err),
		)
		c.JSON(http.StatusOK, gin.H{"error": mapped.Message})
		return
	}

	c.JSON(http.StatusOK, result)
}
