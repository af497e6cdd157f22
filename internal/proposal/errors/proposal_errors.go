package proposalerrors

import (
	"net/http"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"
)

var (
	ErrProposalNotFound = apperror.New(
		apperror.CodeNotFound,
		"Không tìm thấy đề xuất",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Trạng thái đề xuất không hợp lệ",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Ngày đề xuất không hợp lệ, định dạng phải là YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
