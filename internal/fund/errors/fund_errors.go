package funderrors

import (
	"net/http"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
)

var (
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"Loại giao dịch phải là Thu hoặc Chi",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Số tiền phải lớn hơn 0",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Ngày giao dịch không hợp lệ, định dạng phải là YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"Khoảng thời gian không hợp lệ",
		http.StatusBadRequest,
	)
)
