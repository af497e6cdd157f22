package attendance

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, r *Record) error
	CreateBatch(ctx context.Context, rows []Record) error
	DeleteBySlot(ctx context.Context, employeeID, date, shift string) error
	FindBySlot(ctx context.Context, employeeID, date, shift string) (*Record, error)
	FindByDate(ctx context.Context, date string) ([]Record, error)
	FindAll(ctx context.Context) ([]Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) CreateBatch(ctx context.Context, rows []Record) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) DeleteBySlot(ctx context.Context, employeeID, date, shift string) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
		Where("shift = ?", shift).
		Delete(&Record{}).Error
}

func (r *repository) FindBySlot(ctx context.Context, employeeID, date, shift string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
		Where("shift = ?", shift).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindByDate(ctx context.Context, date string) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("employee_id ASC, shift ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Order("date DESC, employee_id ASC").
		Find(&rows).Error
	return rows, err
}
