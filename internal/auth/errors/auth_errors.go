package autherrors

import (
	"net/http"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Tên đăng nhập hoặc mật khẩu không đúng",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Phiên đăng nhập không hợp lệ",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Mã làm mới phiên không hợp lệ",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Bạn không có quyền thực hiện thao tác này",
		http.StatusForbidden,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Không tìm thấy tài khoản",
		http.StatusNotFound,
	)
	ErrAccountDisabled = apperror.New(
		apperror.CodeForbidden,
		"Tài khoản đã bị khóa",
		http.StatusForbidden,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Tên đăng nhập đã tồn tại",
		http.StatusConflict,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Không thể tạo phiên đăng nhập",
		http.StatusInternalServerError,
	)
)
