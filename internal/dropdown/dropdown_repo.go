package dropdown

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, o *Option) error
	FindByType(ctx context.Context, optionType string) ([]Option, error)
	FindAll(ctx context.Context) ([]Option, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Option) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindByType(ctx context.Context, optionType string) ([]Option, error) {
	var rows []Option
	err := r.db.WithContext(ctx).
		Where("type = ?", optionType).
		Order("value ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]Option, error) {
	var rows []Option
	err := r.db.WithContext(ctx).
		Order("type ASC, value ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Option{}, id).Error
}
