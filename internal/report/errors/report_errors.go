package reporterrors

import (
	"net/http"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Không tìm thấy báo cáo",
		http.StatusNotFound,
	)
	ErrInvalidCounts = apperror.New(
		apperror.CodeInvalidInput,
		"Số lượng đơn thuốc không được âm",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Ngày báo cáo không hợp lệ, định dạng phải là YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
