package employeeerrors

import (
	"net/http"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Không tìm thấy nhân viên",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Mã nhân viên đã tồn tại",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Mã nhân viên không hợp lệ",
		http.StatusBadRequest,
	)
)
