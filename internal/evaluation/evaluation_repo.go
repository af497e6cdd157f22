package evaluation

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Evaluation) error
	FindByID(ctx context.Context, id string) (*Evaluation, error)
	FindByEmployeeYear(ctx context.Context, employeeID string, year int) (*Evaluation, error)
	FindByYear(ctx context.Context, year int) ([]Evaluation, error)
	FindAll(ctx context.Context) ([]Evaluation, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Evaluation) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Evaluation, error) {
	var e Evaluation
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmployeeYear(ctx context.Context, employeeID string, year int) (*Evaluation, error) {
	var e Evaluation
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		First(&e).Error
	return &e, err
}

func (r *repository) FindByYear(ctx context.Context, year int) ([]Evaluation, error) {
	var rows []Evaluation
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("average_score DESC, employee_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]Evaluation, error) {
	var rows []Evaluation
	err := r.db.WithContext(ctx).
		Order("year DESC, average_score DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Evaluation{}, "id = ?", id).Error
}
