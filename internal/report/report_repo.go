package report

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, r *Report) error
	FindByID(ctx context.Context, id string) (*Report, error)
	FindAll(ctx context.Context) ([]Report, error)
	Update(ctx context.Context, r *Report) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Report, error) {
	var rep Report
	err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error
	return &rep, err
}

func (r *repository) FindAll(ctx context.Context) ([]Report, error) {
	var rows []Report
	err := r.db.WithContext(ctx).
		Order("date DESC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Report{}, "id = ?", id).Error
}
