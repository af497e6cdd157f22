package attendance

import (
	"context"
	"time"

	attendanceerrors "github.com/haiphamkd/quanlynhansu/internal/attendance/errors"
	"github.com/haiphamkd/quanlynhansu/internal/employee"
	"github.com/haiphamkd/quanlynhansu/internal/shared/writegate"

	"go.uber.org/zap"
)

const scanNote = "Quét QR"

// RosterProvider yields the active employees the daily grid and the scan flow
// resolve against. Satisfied by employee.Service.
type RosterProvider interface {
	GetActiveRoster(ctx context.Context) ([]employee.EmployeeResponse, error)
}

type Service interface {
	ResolveScan(ctx context.Context, req ScanRequest) (PendingCheckIn, error)
	Commit(ctx context.Context, req CommitRequest) (RecordResponse, error)
	ManualCheckIn(ctx context.Context, req ManualCheckInRequest) (RecordResponse, error)
	Delete(ctx context.Context, employeeID, date, shift string) (GridCell, error)
	DailyGrid(ctx context.Context, date string) ([]GridRow, error)
	SaveGrid(ctx context.Context, req SaveGridRequest) (SaveGridResponse, error)
	History(ctx context.Context) ([]RecordResponse, error)
}

type service struct {
	repo   Repository
	roster RosterProvider
	gate   *writegate.Gate
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, roster RosterProvider, gate *writegate.Gate, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		repo:   repo,
		roster: roster,
		gate:   gate,
		logger: l,
		now:    time.Now,
	}
}

// ResolveScan turns a raw badge string into a pending check-in for the
// operator to confirm. Nothing is persisted here.
func (s *service) ResolveScan(ctx context.Context, req ScanRequest) (PendingCheckIn, error) {
	if err := validateDate(req.Date); err != nil {
		return PendingCheckIn{}, err
	}

	badge, err := ParseBadge(req.Payload)
	if err != nil {
		s.logger.Warn("badge parse failed", zap.String("payload", req.Payload))
		return PendingCheckIn{}, err
	}

	roster, err := s.roster.GetActiveRoster(ctx)
	if err != nil {
		return PendingCheckIn{}, err
	}

	var matched *employee.EmployeeResponse
	for i := range roster {
		if roster[i].ID == badge.EmployeeID {
			matched = &roster[i]
			break
		}
	}
	if matched == nil {
		s.logger.Warn("scanned employee not in roster", zap.String("employee_id", badge.EmployeeID))
		return PendingCheckIn{}, attendanceerrors.EmployeeNotInRoster(badge.EmployeeID)
	}

	now := s.now()
	return PendingCheckIn{
		EmployeeID:   matched.ID,
		EmployeeName: matched.FullName,
		Date:         req.Date,
		Shift:        DeriveShift(now),
		TimeIn:       now.Format("15:04:05"),
		Status:       StatusPresent,
		Notes:        scanNote,
		Extra:        badge.Extra,
	}, nil
}

// Commit persists a confirmed check-in as an upsert on the slot: the store
// only appends, so the existing row for (employee, date, shift) is removed
// first. A second commit for the same slot therefore overwrites.
func (s *service) Commit(ctx context.Context, req CommitRequest) (RecordResponse, error) {
	if err := validateDate(req.Date); err != nil {
		return RecordResponse{}, err
	}
	if !ValidShift(req.Shift) {
		return RecordResponse{}, attendanceerrors.ErrInvalidShift
	}
	if !ValidStatus(req.Status) || req.Status == StatusUnscanned {
		return RecordResponse{}, attendanceerrors.ErrInvalidStatus
	}

	name, err := s.rosterName(ctx, req.EmployeeID)
	if err != nil {
		return RecordResponse{}, err
	}

	rec := Record{
		ID:           RecordID(req.EmployeeID, req.Date, req.Shift),
		EmployeeID:   req.EmployeeID,
		EmployeeName: name,
		Date:         req.Date,
		TimeIn:       req.TimeIn,
		Shift:        req.Shift,
		Status:       req.Status,
		Notes:        req.Notes,
	}

	err = s.gate.Do(ctx, func() error {
		if err := s.repo.DeleteBySlot(ctx, rec.EmployeeID, rec.Date, rec.Shift); err != nil {
			return err
		}
		return s.repo.Create(ctx, &rec)
	})
	if err != nil {
		s.logger.Error("commit check-in failed",
			zap.String("record_id", rec.ID),
			zap.Error(err),
		)
		return RecordResponse{}, err
	}

	s.logger.Info("check-in committed",
		zap.String("record_id", rec.ID),
		zap.String("status", rec.Status),
	)
	return mapToRecordResponse(rec), nil
}

// ManualCheckIn skips badge parsing entirely: the operator clicked a grid
// cell, so the slot is already known. Time-of-day is synthesized from now.
func (s *service) ManualCheckIn(ctx context.Context, req ManualCheckInRequest) (RecordResponse, error) {
	return s.Commit(ctx, CommitRequest{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Shift:      req.Shift,
		TimeIn:     s.now().Format("15:04:05"),
		Status:     StatusPresent,
	})
}

// Delete removes the persisted check-in for a slot and hands back the empty
// cell shape the grid converges to. The cell is returned even when the slot
// had no row, so backend and grid end up identical either way.
func (s *service) Delete(ctx context.Context, employeeID, date, shift string) (GridCell, error) {
	empty := GridCell{Status: StatusUnscanned}

	if err := validateDate(date); err != nil {
		return empty, err
	}
	if !ValidShift(shift) {
		return empty, attendanceerrors.ErrInvalidShift
	}

	err := s.gate.Do(ctx, func() error {
		return s.repo.DeleteBySlot(ctx, employeeID, date, shift)
	})
	if err != nil {
		s.logger.Error("delete check-in failed",
			zap.String("employee_id", employeeID),
			zap.String("date", date),
			zap.String("shift", shift),
			zap.Error(err),
		)
		return empty, err
	}

	return empty, nil
}

// DailyGrid builds exactly two slots per active employee for the date,
// pre-filled from persisted records, defaulting to the unscanned cell.
func (s *service) DailyGrid(ctx context.Context, date string) ([]GridRow, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	roster, err := s.roster.GetActiveRoster(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	type slot struct{ employeeID, shift string }
	existing := make(map[slot]Record, len(records))
	for _, r := range records {
		existing[slot{r.EmployeeID, r.Shift}] = r
	}

	rows := make([]GridRow, len(roster))
	for i, emp := range roster {
		row := GridRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Morning:      GridCell{Status: StatusUnscanned},
			Afternoon:    GridCell{Status: StatusUnscanned},
		}
		if r, ok := existing[slot{emp.ID, ShiftMorning}]; ok {
			row.Morning = GridCell{Status: r.Status, TimeIn: r.TimeIn, Notes: r.Notes}
		}
		if r, ok := existing[slot{emp.ID, ShiftAfternoon}]; ok {
			row.Afternoon = GridCell{Status: r.Status, TimeIn: r.TimeIn, Notes: r.Notes}
		}
		rows[i] = row
	}

	return rows, nil
}

// SaveGrid persists only the touched cells: anything still unscanned is never
// written, keeping the store sparse. Each touched slot is pre-deleted so the
// batch append cannot duplicate.
func (s *service) SaveGrid(ctx context.Context, req SaveGridRequest) (SaveGridResponse, error) {
	if err := validateDate(req.Date); err != nil {
		return SaveGridResponse{}, err
	}

	var toSave []Record
	for _, row := range req.Rows {
		cells := []struct {
			shift string
			cell  GridCell
		}{
			{ShiftMorning, row.Morning},
			{ShiftAfternoon, row.Afternoon},
		}
		for _, sc := range cells {
			shift, cell := sc.shift, sc.cell
			if cell.Status == "" || cell.Status == StatusUnscanned {
				continue
			}
			if !ValidStatus(cell.Status) {
				return SaveGridResponse{}, attendanceerrors.ErrInvalidStatus
			}
			toSave = append(toSave, Record{
				ID:           RecordID(row.EmployeeID, req.Date, shift),
				EmployeeID:   row.EmployeeID,
				EmployeeName: row.EmployeeName,
				Date:         req.Date,
				TimeIn:       cell.TimeIn,
				Shift:        shift,
				Status:       cell.Status,
				Notes:        cell.Notes,
			})
		}
	}

	if len(toSave) == 0 {
		return SaveGridResponse{Saved: 0}, nil
	}

	err := s.gate.Do(ctx, func() error {
		for _, rec := range toSave {
			if err := s.repo.DeleteBySlot(ctx, rec.EmployeeID, rec.Date, rec.Shift); err != nil {
				return err
			}
		}
		return s.repo.CreateBatch(ctx, toSave)
	})
	if err != nil {
		s.logger.Error("save daily grid failed",
			zap.String("date", req.Date),
			zap.Int("records", len(toSave)),
			zap.Error(err),
		)
		return SaveGridResponse{}, err
	}

	s.logger.Info("daily grid saved",
		zap.String("date", req.Date),
		zap.Int("records", len(toSave)),
	)
	return SaveGridResponse{Saved: len(toSave)}, nil
}

func (s *service) History(ctx context.Context) ([]RecordResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]RecordResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToRecordResponse(r)
	}
	return resp, nil
}

func (s *service) rosterName(ctx context.Context, employeeID string) (string, error) {
	roster, err := s.roster.GetActiveRoster(ctx)
	if err != nil {
		return "", err
	}
	for _, emp := range roster {
		if emp.ID == employeeID {
			return emp.FullName, nil
		}
	}
	return "", attendanceerrors.EmployeeNotInRoster(employeeID)
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return attendanceerrors.ErrInvalidDate
	}
	return nil
}

func mapToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date,
		TimeIn:       r.TimeIn,
		Shift:        r.Shift,
		Status:       r.Status,
		Notes:        r.Notes,
	}
}
