package dropdown

import (
	"context"
	"net/http"
	"strings"

	"github.com/haiphamkd/quanlynhansu/internal/shared/apperror"

	"go.uber.org/zap"
)

var errEmptyValue = apperror.New(
	apperror.CodeInvalidInput,
	"Giá trị danh mục không được để trống",
	http.StatusBadRequest,
)

type AddOptionRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type OptionResponse struct {
	ID    uint   `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Service interface {
	Add(ctx context.Context, req AddOptionRequest) (OptionResponse, error)
	GetByType(ctx context.Context, optionType string) ([]OptionResponse, error)
	GetAll(ctx context.Context) (map[string][]string, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dropdown.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dropdown.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, req AddOptionRequest) (OptionResponse, error) {
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return OptionResponse{}, errEmptyValue
	}

	opt := Option{Type: req.Type, Value: value}
	if err := s.repo.Create(ctx, &opt); err != nil {
		s.logger.Error("add dropdown option failed", zap.String("type", req.Type), zap.Error(err))
		return OptionResponse{}, err
	}
	return OptionResponse{ID: opt.ID, Type: opt.Type, Value: opt.Value}, nil
}

func (s *service) GetByType(ctx context.Context, optionType string) ([]OptionResponse, error) {
	rows, err := s.repo.FindByType(ctx, optionType)
	if err != nil {
		return nil, err
	}
	resp := make([]OptionResponse, len(rows))
	for i, o := range rows {
		resp[i] = OptionResponse{ID: o.ID, Type: o.Type, Value: o.Value}
	}
	return resp, nil
}

// GetAll groups every option by type, the shape the form screens consume.
func (s *service) GetAll(ctx context.Context) (map[string][]string, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]string)
	for _, o := range rows {
		grouped[o.Type] = append(grouped[o.Type], o.Value)
	}
	return grouped, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
