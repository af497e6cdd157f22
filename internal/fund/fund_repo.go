package fund

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Transaction) error
	// LastBalance returns the BalanceAfter of the most recently appended row,
	// zero when the ledger is empty.
	LastBalance(ctx context.Context) (decimal.Decimal, error)
	FindAll(ctx context.Context) ([]Transaction, error)
	FindByDateRange(ctx context.Context, from, to string) ([]Transaction, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) LastBalance(ctx context.Context) (decimal.Decimal, error) {
	var last Transaction
	err := r.db.WithContext(ctx).
		Order("seq DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return last.BalanceAfter, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Transaction, error) {
	var rows []Transaction
	err := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByDateRange(ctx context.Context, from, to string) ([]Transaction, error) {
	var rows []Transaction
	err := r.db.WithContext(ctx).
		Where("date >= ?", from).
		Where("date <= ?", to).
		Order("seq ASC").
		Find(&rows).Error
	return rows, err
}
