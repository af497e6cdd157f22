package proposal

import (
	"context"
	"errors"
	"time"

	proposalerrors "github.com/haiphamkd/quanlynhansu/internal/proposal/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Save(ctx context.Context, req SaveProposalRequest) (ProposalResponse, error)
	GetAll(ctx context.Context) ([]ProposalResponse, error)
	GetByID(ctx context.Context, id string) (ProposalResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("proposal.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("proposal.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

func (s *service) Save(ctx context.Context, req SaveProposalRequest) (ProposalResponse, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return ProposalResponse{}, proposalerrors.ErrInvalidDate
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}
	if !ValidStatus(status) {
		return ProposalResponse{}, proposalerrors.ErrInvalidStatus
	}

	p := Proposal{
		ID:             req.ID,
		Date:           req.Date,
		ProposalNumber: req.ProposalNumber,
		Title:          req.Title,
		Content:        req.Content,
		Submitter:      req.Submitter,
		Status:         status,
		FileURL:        req.FileURL,
	}

	if p.ID == "" {
		p.ID = NewProposalID(s.now())
	} else if existing, err := s.repo.FindByID(ctx, p.ID); err == nil {
		p.CreatedAt = existing.CreatedAt
		if err := s.repo.Update(ctx, &p); err != nil {
			s.logger.Error("update proposal failed", zap.String("proposal_id", p.ID), zap.Error(err))
			return ProposalResponse{}, err
		}
		s.logger.Info("proposal updated", zap.String("proposal_id", p.ID))
		return mapToProposalResponse(p), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ProposalResponse{}, err
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		s.logger.Error("create proposal failed", zap.String("proposal_id", p.ID), zap.Error(err))
		return ProposalResponse{}, err
	}

	s.logger.Info("proposal created", zap.String("proposal_id", p.ID))
	return mapToProposalResponse(p), nil
}

func (s *service) GetAll(ctx context.Context) ([]ProposalResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]ProposalResponse, len(rows))
	for i, p := range rows {
		resp[i] = mapToProposalResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProposalResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProposalResponse{}, proposalerrors.ErrProposalNotFound
		}
		return ProposalResponse{}, err
	}
	return mapToProposalResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return proposalerrors.ErrProposalNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func mapToProposalResponse(p Proposal) ProposalResponse {
	return ProposalResponse{
		ID:             p.ID,
		Date:           p.Date,
		ProposalNumber: p.ProposalNumber,
		Title:          p.Title,
		Content:        p.Content,
		Submitter:      p.Submitter,
		Status:         p.Status,
		FileURL:        p.FileURL,
	}
}
