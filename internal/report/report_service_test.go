package report

import (
	"context"
	"testing"
	"time"

	reporterrors "github.com/haiphamkd/quanlynhansu/internal/report/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type memRepo struct {
	rows map[string]Report
}

func newMemRepo() *memRepo { return &memRepo{rows: make(map[string]Report)} }

func (m *memRepo) Create(_ context.Context, r *Report) error {
	m.rows[r.ID] = *r
	return nil
}

func (m *memRepo) FindByID(_ context.Context, id string) (*Report, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (m *memRepo) FindAll(context.Context) ([]Report, error) {
	var out []Report
	for _, r := range m.rows {
		out = append(out, r)
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, r *Report) error {
	m.rows[r.ID] = *r
	return nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

func newTestService(repo Repository) *service {
	return &service{
		repo:   repo,
		logger: zap.NewNop(),
		now:    func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) },
	}
}

func TestSave_CreatesWithGeneratedID(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	resp, err := svc.Save(context.Background(), SaveReportRequest{
		Date:           "2025-03-10",
		TotalIssued:    120,
		NotReceived:    3,
		Reason:         "Bệnh nhân xuất viện sớm",
		ReporterID:     "NV001",
		Department:     "Khoa Nội",
		AttachmentURLs: []string{"https://files/bc1.pdf", "https://files/bc2.pdf"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, []string{"https://files/bc1.pdf", "https://files/bc2.pdf"}, resp.AttachmentURLs)

	stored := repo.rows[resp.ID]
	assert.Equal(t, "https://files/bc1.pdf;https://files/bc2.pdf", stored.AttachmentURLs)
}

func TestSave_UpdatesExistingID(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	first, err := svc.Save(context.Background(), SaveReportRequest{
		Date: "2025-03-10", TotalIssued: 100, NotReceived: 5,
	})
	require.NoError(t, err)

	second, err := svc.Save(context.Background(), SaveReportRequest{
		ID: first.ID, Date: "2025-03-10", TotalIssued: 100, NotReceived: 2,
		Reason: "Đã nhận bổ sung",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, 2, repo.rows[first.ID].NotReceived)
}

func TestSave_RejectsNegativeCounts(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.Save(context.Background(), SaveReportRequest{
		Date: "2025-03-10", TotalIssued: -1,
	})
	assert.ErrorIs(t, err, reporterrors.ErrInvalidCounts)

	_, err = svc.Save(context.Background(), SaveReportRequest{
		Date: "2025-03-10", NotReceived: -4,
	})
	assert.ErrorIs(t, err, reporterrors.ErrInvalidCounts)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.GetByID(context.Background(), "BC-999")
	assert.ErrorIs(t, err, reporterrors.ErrReportNotFound)
}

func TestAttachmentRoundTrip(t *testing.T) {
	joined := JoinAttachments([]string{" https://a ", "", "https://b"})
	assert.Equal(t, "https://a;https://b", joined)
	assert.Equal(t, []string{"https://a", "https://b"}, SplitAttachments(joined))
	assert.Nil(t, SplitAttachments(""))
}
