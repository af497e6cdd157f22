package shift

import (
	"context"
	"testing"

	"github.com/haiphamkd/quanlynhansu/internal/shared/writegate"
	shifterrors "github.com/haiphamkd/quanlynhansu/internal/shift/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memRepo struct {
	rows map[string]Shift
}

func newMemRepo() *memRepo { return &memRepo{rows: make(map[string]Shift)} }

func (m *memRepo) Create(_ context.Context, s *Shift) error {
	m.rows[s.ID] = *s
	return nil
}

func (m *memRepo) DeleteByID(_ context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

func (m *memRepo) FindByWeek(_ context.Context, weekStart string) ([]Shift, error) {
	var out []Shift
	for _, s := range m.rows {
		if s.WeekStart == weekStart {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memRepo) FindAll(context.Context) ([]Shift, error) {
	var out []Shift
	for _, s := range m.rows {
		out = append(out, s)
	}
	return out, nil
}

func newTestService(repo Repository) Service {
	return &service{repo: repo, gate: writegate.New(writegate.DefaultWait), logger: zap.NewNop()}
}

func TestSave_SameWeekAndCaOverwrites(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	first, err := svc.Save(context.Background(), SaveShiftRequest{
		WeekStart: "2025-03-10", WeekEnd: "2025-03-16", Ca: CaMorning,
		Mon: "Nguyễn Văn A", Tue: "Trần Thị B",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10-Sáng", first.ID)

	second, err := svc.Save(context.Background(), SaveShiftRequest{
		WeekStart: "2025-03-10", WeekEnd: "2025-03-16", Ca: CaMorning,
		Mon: "Lê Văn C",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, "Lê Văn C", repo.rows[first.ID].Mon)
	assert.Empty(t, repo.rows[first.ID].Tue)
}

func TestSave_DifferentCaCoexist(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	for _, ca := range []string{CaMorning, CaAfternoon, CaNight} {
		_, err := svc.Save(context.Background(), SaveShiftRequest{
			WeekStart: "2025-03-10", WeekEnd: "2025-03-16", Ca: ca,
		})
		require.NoError(t, err)
	}
	assert.Len(t, repo.rows, 3)
}

func TestSave_RejectsInvalidInput(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.Save(context.Background(), SaveShiftRequest{
		WeekStart: "2025-03-10", WeekEnd: "2025-03-16", Ca: "Khuya",
	})
	assert.ErrorIs(t, err, shifterrors.ErrInvalidCa)

	_, err = svc.Save(context.Background(), SaveShiftRequest{
		WeekStart: "10/03/2025", WeekEnd: "2025-03-16", Ca: CaMorning,
	})
	assert.ErrorIs(t, err, shifterrors.ErrInvalidWeek)
}
