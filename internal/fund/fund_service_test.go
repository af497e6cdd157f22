package fund

import (
	"context"
	"database/sql"
	"testing"
	"time"

	funderrors "github.com/haiphamkd/quanlynhansu/internal/fund/errors"
	"github.com/haiphamkd/quanlynhansu/internal/shared/writegate"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memRepo is an append-only in-memory ledger. WithTx returns the same store
// so appends made inside a transaction are visible to the assertions.
type memRepo struct {
	rows []Transaction
}

func (m *memRepo) WithTx(*sql.Tx) Repository { return m }

func (m *memRepo) Create(_ context.Context, t *Transaction) error {
	t.Seq = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *t)
	return nil
}

func (m *memRepo) LastBalance(context.Context) (decimal.Decimal, error) {
	if len(m.rows) == 0 {
		return decimal.Zero, nil
	}
	return m.rows[len(m.rows)-1].BalanceAfter, nil
}

func (m *memRepo) FindAll(context.Context) ([]Transaction, error) {
	return m.rows, nil
}

func (m *memRepo) FindByDateRange(_ context.Context, from, to string) ([]Transaction, error) {
	var out []Transaction
	for _, t := range m.rows {
		if t.Date >= from && t.Date <= to {
			out = append(out, t)
		}
	}
	return out, nil
}

func newTestService(t *testing.T, repo Repository, appends int) (*service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for i := 0; i < appends; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	calls := 0
	return &service{
		db:     db,
		repo:   repo,
		gate:   writegate.New(writegate.DefaultWait),
		logger: zap.NewNop(),
		now: func() time.Time {
			calls++
			return base.Add(time.Duration(calls) * time.Second)
		},
	}, mock
}

func vnd(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestRecord_BalanceChainFollowsAppendOrder(t *testing.T) {
	repo := &memRepo{}
	svc, mock := newTestService(t, repo, 4)

	appends := []struct {
		date   string
		typ    string
		amount int64
		want   int64
	}{
		{"2025-03-10", TypeIncome, 500_000, 500_000},
		{"2025-03-10", TypeExpense, 120_000, 380_000},
		// Backdated rows extend the chain, they never rewrite it.
		{"2025-02-01", TypeIncome, 1_000_000, 1_380_000},
		{"2025-03-11", TypeExpense, 80_000, 1_300_000},
	}

	for _, a := range appends {
		resp, err := svc.Record(context.Background(), RecordTransactionRequest{
			Date:      a.date,
			Type:      a.typ,
			Amount:    vnd(a.amount),
			Content:   "test",
			Performer: "Nguyễn Văn A",
		})
		require.NoError(t, err)
		assert.True(t, resp.BalanceAfter.Equal(vnd(a.want)),
			"date=%s want=%d got=%s", a.date, a.want, resp.BalanceAfter)
	}

	// Final balance is the signed sum over append order.
	sum := decimal.Zero
	for _, r := range repo.rows {
		sum = sum.Add(r.SignedAmount())
	}
	assert.True(t, repo.rows[len(repo.rows)-1].BalanceAfter.Equal(sum))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_DistinctIDs(t *testing.T) {
	repo := &memRepo{}
	svc, _ := newTestService(t, repo, 2)

	first, err := svc.Record(context.Background(), RecordTransactionRequest{
		Date: "2025-03-10", Type: TypeIncome, Amount: vnd(1000),
	})
	require.NoError(t, err)
	second, err := svc.Record(context.Background(), RecordTransactionRequest{
		Date: "2025-03-10", Type: TypeIncome, Amount: vnd(1000),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRecord_RejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t, &memRepo{}, 0)

	_, err := svc.Record(context.Background(), RecordTransactionRequest{
		Date: "2025-03-10", Type: "Vay", Amount: vnd(1000),
	})
	assert.ErrorIs(t, err, funderrors.ErrInvalidType)

	_, err = svc.Record(context.Background(), RecordTransactionRequest{
		Date: "2025-03-10", Type: TypeIncome, Amount: vnd(0),
	})
	assert.ErrorIs(t, err, funderrors.ErrInvalidAmount)

	_, err = svc.Record(context.Background(), RecordTransactionRequest{
		Date: "2025-03-10", Type: TypeIncome, Amount: vnd(-500),
	})
	assert.ErrorIs(t, err, funderrors.ErrInvalidAmount)

	_, err = svc.Record(context.Background(), RecordTransactionRequest{
		Date: "10/03/2025", Type: TypeIncome, Amount: vnd(1000),
	})
	assert.ErrorIs(t, err, funderrors.ErrInvalidDate)
}

func TestRecord_RejectedWhileGateHeld(t *testing.T) {
	repo := &memRepo{}
	svc, _ := newTestService(t, repo, 0)
	svc.gate = writegate.New(50 * time.Millisecond)

	release := make(chan struct{})
	held := make(chan struct{})
	go func() {
		_ = svc.gate.Do(context.Background(), func() error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	_, err := svc.Record(context.Background(), RecordTransactionRequest{
		Date: "2025-03-10", Type: TypeIncome, Amount: vnd(1000),
	})
	assert.ErrorIs(t, err, writegate.ErrBusy)
	assert.Empty(t, repo.rows)
}

func TestSummary_RangeTotalsAndGlobalBalance(t *testing.T) {
	repo := &memRepo{}
	svc, _ := newTestService(t, repo, 4)

	seed := []struct {
		date   string
		typ    string
		amount int64
	}{
		{"2025-03-01", TypeIncome, 1_000_000},
		{"2025-03-05", TypeExpense, 200_000},
		{"2025-03-20", TypeIncome, 300_000},
		{"2025-04-02", TypeExpense, 50_000},
	}
	for _, a := range seed {
		_, err := svc.Record(context.Background(), RecordTransactionRequest{
			Date: a.date, Type: a.typ, Amount: vnd(a.amount),
		})
		require.NoError(t, err)
	}

	got, err := svc.Summary(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.True(t, got.TotalIncome.Equal(vnd(1_300_000)), "income=%s", got.TotalIncome)
	assert.True(t, got.TotalExpense.Equal(vnd(200_000)), "expense=%s", got.TotalExpense)
	// The April expense is outside the range yet still moves the balance.
	assert.True(t, got.CurrentBalance.Equal(vnd(1_050_000)), "balance=%s", got.CurrentBalance)
	assert.Len(t, got.Transactions, 3)
}

func TestSummary_RejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService(t, &memRepo{}, 0)

	_, err := svc.Summary(context.Background(), "2025-04-01", "2025-03-01")
	assert.ErrorIs(t, err, funderrors.ErrInvalidRange)
}

func TestSummary_EmptyLedger(t *testing.T) {
	svc, _ := newTestService(t, &memRepo{}, 0)

	got, err := svc.Summary(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.True(t, got.TotalIncome.IsZero())
	assert.True(t, got.TotalExpense.IsZero())
	assert.True(t, got.CurrentBalance.IsZero())
}
