package evaluation

import (
	"context"
	"testing"

	"github.com/haiphamkd/quanlynhansu/internal/employee"
	employeeerrors "github.com/haiphamkd/quanlynhansu/internal/employee/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type memRepo struct {
	rows map[string]Evaluation
}

func newMemRepo() *memRepo { return &memRepo{rows: make(map[string]Evaluation)} }

func (m *memRepo) Create(_ context.Context, e *Evaluation) error {
	m.rows[e.ID] = *e
	return nil
}

func (m *memRepo) FindByID(_ context.Context, id string) (*Evaluation, error) {
	e, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (m *memRepo) FindByEmployeeYear(_ context.Context, employeeID string, year int) (*Evaluation, error) {
	for _, e := range m.rows {
		if e.EmployeeID == employeeID && e.Year == year {
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepo) FindByYear(_ context.Context, year int) ([]Evaluation, error) {
	var out []Evaluation
	for _, e := range m.rows {
		if e.Year == year {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepo) FindAll(context.Context) ([]Evaluation, error) {
	var out []Evaluation
	for _, e := range m.rows {
		out = append(out, e)
	}
	return out, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

type fakeEmployees struct{}

func (fakeEmployees) GetByID(_ context.Context, id string) (employee.EmployeeResponse, error) {
	if id != "NV001" {
		return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return employee.EmployeeResponse{ID: "NV001", FullName: "Nguyễn Văn A", Position: "Dược sĩ"}, nil
}

func newTestService(repo Repository) Service {
	return &service{repo: repo, employees: fakeEmployees{}, logger: zap.NewNop()}
}

func TestCreate_ComputesAverageAndID(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), CreateEvaluationRequest{
		EmployeeID:        "NV001",
		Year:              2025,
		ScoreProfessional: 9,
		ScoreAttitude:     8,
		ScoreDiscipline:   8,
		Rank:              "Hoàn thành xuất sắc",
	})
	require.NoError(t, err)

	assert.Equal(t, "E-2025-NV001", resp.ID)
	assert.Equal(t, "Nguyễn Văn A", resp.FullName)
	assert.InDelta(t, 8.3, resp.AverageScore, 0.001)
}

func TestCreate_RejectsDuplicateYear(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateEvaluationRequest{
		EmployeeID: "NV001", Year: 2025,
		ScoreProfessional: 9, ScoreAttitude: 9, ScoreDiscipline: 9,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateEvaluationRequest{
		EmployeeID: "NV001", Year: 2025,
		ScoreProfessional: 7, ScoreAttitude: 7, ScoreDiscipline: 7,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2025")
	assert.Len(t, repo.rows, 1, "duplicate must be rejected before write")
}

func TestCreate_DifferentYearsAllowed(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	for _, year := range []int{2024, 2025} {
		_, err := svc.Create(context.Background(), CreateEvaluationRequest{
			EmployeeID: "NV001", Year: year,
			ScoreProfessional: 8, ScoreAttitude: 8, ScoreDiscipline: 8,
		})
		require.NoError(t, err)
	}
	assert.Len(t, repo.rows, 2)
}

func TestCreate_UnknownEmployee(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.Create(context.Background(), CreateEvaluationRequest{
		EmployeeID: "NV999", Year: 2025,
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestAverageScore_Rounding(t *testing.T) {
	assert.InDelta(t, 8.3, AverageScore(9, 8, 8), 0.001)
	assert.InDelta(t, 10.0, AverageScore(10, 10, 10), 0.001)
	assert.InDelta(t, 7.7, AverageScore(8, 8, 7), 0.001)
}
