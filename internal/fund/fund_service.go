package fund

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/haiphamkd/quanlynhansu/internal/events"
	funderrors "github.com/haiphamkd/quanlynhansu/internal/fund/errors"
	"github.com/haiphamkd/quanlynhansu/internal/messaging/kafka"
	"github.com/haiphamkd/quanlynhansu/internal/shared/contextutil"
	"github.com/haiphamkd/quanlynhansu/internal/shared/writegate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Record(ctx context.Context, req RecordTransactionRequest) (TransactionResponse, error)
	GetAll(ctx context.Context) ([]TransactionResponse, error)
	Summary(ctx context.Context, from, to string) (SummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	gate   *writegate.Gate
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, gate *writegate.Gate, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, gate, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	gate *writegate.Gate,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("fund.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fund.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		gate:   gate,
		logger: l,
		now:    time.Now,
	}
}

// Record appends one transaction and derives its post-transaction balance
// from the last appended row. The read-compute-append sequence runs under the
// write gate so two concurrent appends cannot both read the same last
// balance; without it the running total would silently fork.
func (s *service) Record(ctx context.Context, req RecordTransactionRequest) (TransactionResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !ValidType(req.Type) {
		return TransactionResponse{}, funderrors.ErrInvalidType
	}
	if !req.Amount.IsPositive() {
		return TransactionResponse{}, funderrors.ErrInvalidAmount
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return TransactionResponse{}, funderrors.ErrInvalidDate
	}

	txn := Transaction{
		ID:        NewTransactionID(s.now()),
		Date:      req.Date,
		Type:      req.Type,
		Amount:    req.Amount,
		Content:   req.Content,
		Performer: req.Performer,
	}

	err := s.gate.Do(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		qtx := s.repo.WithTx(tx)

		lastBalance, err := qtx.LastBalance(ctx)
		if err != nil {
			return err
		}
		txn.BalanceAfter = lastBalance.Add(txn.SignedAmount())

		if err := qtx.Create(ctx, &txn); err != nil {
			return err
		}

		if s.outbox != nil {
			event := events.FundTransactionRecordedEvent{
				EventType:     "fund_transaction_recorded",
				RequestID:     rid,
				TransactionID: txn.ID,
				Type:          txn.Type,
				Amount:        txn.Amount.String(),
				BalanceAfter:  txn.BalanceAfter.String(),
				Performer:     txn.Performer,
				OccurredAt:    time.Now().UTC(),
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}
			if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: "fund_transaction",
				AggregateID:   txn.ID,
				EventType:     event.EventType,
				Topic:         events.FundTransactionRecordedTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}); err != nil {
				return err
			}
		}

		return tx.Commit()
	})
	if err != nil {
		s.logger.Error("record fund transaction failed",
			zap.String("request_id", rid),
			zap.String("type", req.Type),
			zap.Error(err),
		)
		return TransactionResponse{}, err
	}

	s.logger.Info("fund transaction recorded",
		zap.String("transaction_id", txn.ID),
		zap.String("type", txn.Type),
		zap.String("amount", txn.Amount.String()),
		zap.String("balance_after", txn.BalanceAfter.String()),
	)
	return mapToTransactionResponse(txn), nil
}

func (s *service) GetAll(ctx context.Context) ([]TransactionResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]TransactionResponse, len(rows))
	for i, t := range rows {
		resp[i] = mapToTransactionResponse(t)
	}
	return resp, nil
}

// Summary sums income and expense over the inclusive date range. The current
// balance still comes from the last appended row overall so the summary cards
// filter never moves the balance figure.
func (s *service) Summary(ctx context.Context, from, to string) (SummaryResponse, error) {
	if _, err := time.Parse("2006-01-02", from); err != nil {
		return SummaryResponse{}, funderrors.ErrInvalidRange
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return SummaryResponse{}, funderrors.ErrInvalidRange
	}
	if from > to {
		return SummaryResponse{}, funderrors.ErrInvalidRange
	}

	rows, err := s.repo.FindByDateRange(ctx, from, to)
	if err != nil {
		return SummaryResponse{}, err
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	txns := make([]TransactionResponse, len(rows))
	for i, t := range rows {
		if t.Type == TypeIncome {
			totalIncome = totalIncome.Add(t.Amount)
		} else {
			totalExpense = totalExpense.Add(t.Amount)
		}
		txns[i] = mapToTransactionResponse(t)
	}

	currentBalance, err := s.repo.LastBalance(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}

	return SummaryResponse{
		From:           from,
		To:             to,
		TotalIncome:    totalIncome,
		TotalExpense:   totalExpense,
		CurrentBalance: currentBalance,
		Transactions:   txns,
	}, nil
}

func mapToTransactionResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Date:         t.Date,
		Type:         t.Type,
		Amount:       t.Amount,
		Content:      t.Content,
		Performer:    t.Performer,
		BalanceAfter: t.BalanceAfter,
	}
}
