package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	reporterrors "github.com/haiphamkd/quanlynhansu/internal/report/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	// Save creates when the id is new or blank, updates when it already
	// exists. The form edits and resubmits under the same id.
	Save(ctx context.Context, req SaveReportRequest) (ReportResponse, error)
	GetAll(ctx context.Context) ([]ReportResponse, error)
	GetByID(ctx context.Context, id string) (ReportResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

func (s *service) Save(ctx context.Context, req SaveReportRequest) (ReportResponse, error) {
	if req.TotalIssued < 0 || req.NotReceived < 0 {
		return ReportResponse{}, reporterrors.ErrInvalidCounts
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidDate
	}

	rep := Report{
		ID:             req.ID,
		Date:           req.Date,
		TotalIssued:    req.TotalIssued,
		NotReceived:    req.NotReceived,
		Reason:         req.Reason,
		ReporterID:     req.ReporterID,
		Department:     req.Department,
		AttachmentURLs: JoinAttachments(req.AttachmentURLs),
	}

	if rep.ID == "" {
		rep.ID = fmt.Sprintf("BC-%d", s.now().UnixMilli())
	} else if existing, err := s.repo.FindByID(ctx, rep.ID); err == nil {
		rep.CreatedAt = existing.CreatedAt
		if err := s.repo.Update(ctx, &rep); err != nil {
			s.logger.Error("update report failed", zap.String("report_id", rep.ID), zap.Error(err))
			return ReportResponse{}, err
		}
		s.logger.Info("report updated", zap.String("report_id", rep.ID))
		return mapToReportResponse(rep), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ReportResponse{}, err
	}

	if err := s.repo.Create(ctx, &rep); err != nil {
		s.logger.Error("create report failed", zap.String("report_id", rep.ID), zap.Error(err))
		return ReportResponse{}, err
	}

	s.logger.Info("report created", zap.String("report_id", rep.ID))
	return mapToReportResponse(rep), nil
}

func (s *service) GetAll(ctx context.Context) ([]ReportResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]ReportResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToReportResponse(r)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ReportResponse, error) {
	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportResponse{}, reporterrors.ErrReportNotFound
		}
		return ReportResponse{}, err
	}
	return mapToReportResponse(*rep), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reporterrors.ErrReportNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func mapToReportResponse(r Report) ReportResponse {
	return ReportResponse{
		ID:             r.ID,
		Date:           r.Date,
		TotalIssued:    r.TotalIssued,
		NotReceived:    r.NotReceived,
		Reason:         r.Reason,
		ReporterID:     r.ReporterID,
		Department:     r.Department,
		AttachmentURLs: SplitAttachments(r.AttachmentURLs),
	}
}
