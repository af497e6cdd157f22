package shift

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, s *Shift) error
	DeleteByID(ctx context.Context, id string) error
	FindByWeek(ctx context.Context, weekStart string) ([]Shift, error)
	FindAll(ctx context.Context) ([]Shift, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Shift{}, "id = ?", id).Error
}

func (r *repository) FindByWeek(ctx context.Context, weekStart string) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Where("week_start = ?", weekStart).
		Order("ca ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Order("week_start DESC, ca ASC").
		Find(&rows).Error
	return rows, err
}
