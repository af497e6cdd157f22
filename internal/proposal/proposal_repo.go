package proposal

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	FindByID(ctx context.Context, id string) (*Proposal, error)
	FindAll(ctx context.Context) ([]Proposal, error)
	Update(ctx context.Context, p *Proposal) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Proposal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Proposal, error) {
	var p Proposal
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindAll(ctx context.Context) ([]Proposal, error) {
	var rows []Proposal
	err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, p *Proposal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Proposal{}, "id = ?", id).Error
}
