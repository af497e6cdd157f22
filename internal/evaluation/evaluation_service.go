package evaluation

import (
	"context"
	"errors"
	"time"

	"github.com/haiphamkd/quanlynhansu/internal/employee"
	evaluationerrors "github.com/haiphamkd/quanlynhansu/internal/evaluation/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RosterProvider interface {
	GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

type Service interface {
	Create(ctx context.Context, req CreateEvaluationRequest) (EvaluationResponse, error)
	GetByYear(ctx context.Context, year int) ([]EvaluationResponse, error)
	GetAll(ctx context.Context) ([]EvaluationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	employees RosterProvider
	logger    *zap.Logger
}

func NewService(repo Repository, employees RosterProvider, logger ...*zap.Logger) Service {
	l := zap.L().Named("evaluation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evaluation.service")
	}
	return &service{repo: repo, employees: employees, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEvaluationRequest) (EvaluationResponse, error) {
	if req.Year < 2000 || req.Year > time.Now().Year()+1 {
		return EvaluationResponse{}, evaluationerrors.ErrInvalidYear
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return EvaluationResponse{}, err
	}

	// One evaluation per employee per year, checked before anything is
	// written. The unique index backstops a race.
	if _, err := s.repo.FindByEmployeeYear(ctx, req.EmployeeID, req.Year); err == nil {
		return EvaluationResponse{}, evaluationerrors.DuplicateEvaluation(req.EmployeeID, req.Year)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return EvaluationResponse{}, err
	}

	eval := Evaluation{
		ID:                EvaluationID(req.Year, req.EmployeeID),
		EmployeeID:        req.EmployeeID,
		FullName:          emp.FullName,
		Position:          emp.Position,
		Year:              req.Year,
		ScoreProfessional: req.ScoreProfessional,
		ScoreAttitude:     req.ScoreAttitude,
		ScoreDiscipline:   req.ScoreDiscipline,
		AverageScore:      AverageScore(req.ScoreProfessional, req.ScoreAttitude, req.ScoreDiscipline),
		Rank:              req.Rank,
		RewardProposal:    req.RewardProposal,
		RewardTitle:       req.RewardTitle,
		Notes:             req.Notes,
	}

	if err := s.repo.Create(ctx, &eval); err != nil {
		s.logger.Error("create evaluation failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Int("year", req.Year),
			zap.Error(err),
		)
		return EvaluationResponse{}, err
	}

	s.logger.Info("evaluation created", zap.String("evaluation_id", eval.ID))
	return mapToEvaluationResponse(eval), nil
}

func (s *service) GetByYear(ctx context.Context, year int) ([]EvaluationResponse, error) {
	rows, err := s.repo.FindByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return mapToEvaluationList(rows), nil
}

func (s *service) GetAll(ctx context.Context) ([]EvaluationResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToEvaluationList(rows), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return evaluationerrors.ErrEvaluationNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func mapToEvaluationResponse(e Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:                e.ID,
		EmployeeID:        e.EmployeeID,
		FullName:          e.FullName,
		Position:          e.Position,
		Year:              e.Year,
		ScoreProfessional: e.ScoreProfessional,
		ScoreAttitude:     e.ScoreAttitude,
		ScoreDiscipline:   e.ScoreDiscipline,
		AverageScore:      e.AverageScore,
		Rank:              e.Rank,
		RewardProposal:    e.RewardProposal,
		RewardTitle:       e.RewardTitle,
		Notes:             e.Notes,
	}
}

func mapToEvaluationList(rows []Evaluation) []EvaluationResponse {
	resp := make([]EvaluationResponse, len(rows))
	for i, e := range rows {
		resp[i] = mapToEvaluationResponse(e)
	}
	return resp
}
