package shifterrors

import (
	"net/http"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
)

var (
	ErrInvalidCa = apperror.New(
		apperror.CodeInvalidInput,
		"Ca trực phải là Sáng, Chiều hoặc Đêm",
		http.StatusBadRequest,
	)
	ErrInvalidWeek = apperror.New(
		apperror.CodeInvalidInput,
		"Tuần trực không hợp lệ, định dạng phải là YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
