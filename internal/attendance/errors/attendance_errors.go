package attendanceerrors

import (
	"net/http"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
)

var (
	ErrInvalidBadge = apperror.New(
		apperror.CodeInvalidInput,
		"Mã QR không hợp lệ",
		http.StatusBadRequest,
	)
	ErrInvalidShift = apperror.New(
		apperror.CodeInvalidInput,
		"Ca làm việc không hợp lệ",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Ngày chấm công không hợp lệ, định dạng phải là YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Trạng thái chấm công không hợp lệ",
		http.StatusBadRequest,
	)
)

// EmployeeNotInRoster reports the scanned id back to the operator so they can
// rescan or pick manually.
func EmployeeNotInRoster(employeeID string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		"Không tìm thấy nhân viên "+employeeID+" trong danh sách đang làm việc",
		http.StatusNotFound,
	)
}
