package evaluationerrors

import (
	"fmt"
	"net/http"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
)

var (
	ErrEvaluationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Không tìm thấy đánh giá",
		http.StatusNotFound,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Năm đánh giá không hợp lệ",
		http.StatusBadRequest,
	)
)

// DuplicateEvaluation is rejected before anything is written; each employee
// gets one evaluation per year.
func DuplicateEvaluation(employeeID string, year int) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("Nhân viên %s đã được đánh giá cho năm %d", employeeID, year),
		http.StatusConflict,
	)
}
