package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/haiphamkd/quanlynhansu/internal/events"
	"github.com/haiphamkd/quanlynhansu/internal/messaging/kafka"
	"github.com/haiphamkd/quanlynhansu/internal/shared/contextutil"
	"github.com/haiphamkd/quanlynhansu/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ActiveRosterKey is the cache key for the active-employee roster used by the
// attendance screen.
const ActiveRosterKey = "employees:roster:active"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetActiveRoster(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("id", req.ID),
		zap.String("full_name", req.FullName),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.ID == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_id")
		if err != nil {
			s.logger.Error("create employee generate id failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.ID = fmt.Sprintf("NV%03d", nextVal)
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	empl := &Employee{
		ID:               req.ID,
		FullName:         req.FullName,
		DOB:              req.DOB,
		Gender:           req.Gender,
		Position:         req.Position,
		Qualification:    req.Qualification,
		Phone:            req.Phone,
		Email:            req.Email,
		ContractDate:     req.ContractDate,
		JoinDate:         req.JoinDate,
		Hometown:         req.Hometown,
		PermanentAddress: req.PermanentAddress,
		IDCardNumber:     req.IDCardNumber,
		IDCardDate:       req.IDCardDate,
		IDCardPlace:      req.IDCardPlace,
		Status:           status,
		AvatarURL:        req.AvatarURL,
		FileURL:          req.FileURL,
		Notes:            req.Notes,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID,
			FullName:   empl.FullName,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID,
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateRoster(ctx)
	s.logger.Info("create employee success", zap.String("employee_id", empl.ID))

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

// GetActiveRoster serves the attendance screen's employee list. It is cached
// because the scan flow reloads it on every date change; singleflight keeps
// concurrent cache misses down to one roster query.
func (s *service) GetActiveRoster(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ActiveRosterKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ActiveRosterKey, func() (interface{}, error) {
		emps, err := s.repo.FindActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, ActiveRosterKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = req.FullName
	empl.DOB = req.DOB
	empl.Gender = req.Gender
	empl.Position = req.Position
	empl.Qualification = req.Qualification
	empl.Phone = req.Phone
	empl.Email = req.Email
	empl.ContractDate = req.ContractDate
	empl.JoinDate = req.JoinDate
	empl.Hometown = req.Hometown
	empl.PermanentAddress = req.PermanentAddress
	empl.IDCardNumber = req.IDCardNumber
	empl.IDCardDate = req.IDCardDate
	empl.IDCardPlace = req.IDCardPlace
	if req.Status != "" {
		empl.Status = req.Status
	}
	empl.AvatarURL = req.AvatarURL
	empl.FileURL = req.FileURL
	empl.Notes = req.Notes

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateRoster(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateRoster(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateRoster(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActiveRosterKey).Err(); err != nil {
		s.logger.Error("failed to invalidate roster cache",
			zap.Error(err),
			zap.String("key", ActiveRosterKey),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		FullName:         e.FullName,
		DOB:              e.DOB,
		Gender:           e.Gender,
		Position:         e.Position,
		Qualification:    e.Qualification,
		Phone:            e.Phone,
		Email:            e.Email,
		ContractDate:     e.ContractDate,
		JoinDate:         e.JoinDate,
		Hometown:         e.Hometown,
		PermanentAddress: e.PermanentAddress,
		IDCardNumber:     e.IDCardNumber,
		IDCardDate:       e.IDCardDate,
		IDCardPlace:      e.IDCardPlace,
		Status:           e.Status,
		AvatarURL:        e.AvatarURL,
		FileURL:          e.FileURL,
		Notes:            e.Notes,
	}
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp
}
