package shift

import (
	"context"
	"time"

	"github.com/haiphamkd/quanlynhansu/internal/shared/writegate"
	shifterrors "github.com/haiphamkd/quanlynhansu/internal/shift/errors"

	"go.uber.org/zap"
)

type Service interface {
	// Save upserts one (week, ca) roster row: the slot is deleted first, then
	// appended, the same discipline as attendance slots.
	Save(ctx context.Context, req SaveShiftRequest) (ShiftResponse, error)
	GetWeek(ctx context.Context, weekStart string) ([]ShiftResponse, error)
	GetAll(ctx context.Context) ([]ShiftResponse, error)
}

type service struct {
	repo   Repository
	gate   *writegate.Gate
	logger *zap.Logger
}

func NewService(repo Repository, gate *writegate.Gate, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{repo: repo, gate: gate, logger: l}
}

func (s *service) Save(ctx context.Context, req SaveShiftRequest) (ShiftResponse, error) {
	if !ValidCa(req.Ca) {
		return ShiftResponse{}, shifterrors.ErrInvalidCa
	}
	if _, err := time.Parse("2006-01-02", req.WeekStart); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidWeek
	}
	if _, err := time.Parse("2006-01-02", req.WeekEnd); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidWeek
	}

	row := Shift{
		ID:        ShiftID(req.WeekStart, req.Ca),
		WeekStart: req.WeekStart,
		WeekEnd:   req.WeekEnd,
		Ca:        req.Ca,
		Mon:       req.Mon,
		Tue:       req.Tue,
		Wed:       req.Wed,
		Thu:       req.Thu,
		Fri:       req.Fri,
		Sat:       req.Sat,
		Sun:       req.Sun,
	}

	err := s.gate.Do(ctx, func() error {
		if err := s.repo.DeleteByID(ctx, row.ID); err != nil {
			return err
		}
		return s.repo.Create(ctx, &row)
	})
	if err != nil {
		s.logger.Error("save duty shift failed", zap.String("shift_id", row.ID), zap.Error(err))
		return ShiftResponse{}, err
	}

	s.logger.Info("duty shift saved", zap.String("shift_id", row.ID))
	return mapToShiftResponse(row), nil
}

func (s *service) GetWeek(ctx context.Context, weekStart string) ([]ShiftResponse, error) {
	if _, err := time.Parse("2006-01-02", weekStart); err != nil {
		return nil, shifterrors.ErrInvalidWeek
	}
	rows, err := s.repo.FindByWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	return mapToShiftList(rows), nil
}

func (s *service) GetAll(ctx context.Context) ([]ShiftResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToShiftList(rows), nil
}

func mapToShiftResponse(row Shift) ShiftResponse {
	return ShiftResponse{
		ID:        row.ID,
		WeekStart: row.WeekStart,
		WeekEnd:   row.WeekEnd,
		Ca:        row.Ca,
		Mon:       row.Mon,
		Tue:       row.Tue,
		Wed:       row.Wed,
		Thu:       row.Thu,
		Fri:       row.Fri,
		Sat:       row.Sat,
		Sun:       row.Sun,
	}
}

func mapToShiftList(rows []Shift) []ShiftResponse {
	resp := make([]ShiftResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToShiftResponse(row)
	}
	return resp
}
