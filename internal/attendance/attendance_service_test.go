package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	attendanceerrors "github.com/haiphamkd/quanlynhansu/internal/attendance/errors"
	"github.com/haiphamkd/quanlynhansu/internal/employee"
	"github.com/haiphamkd/quanlynhansu/internal/shared/writegate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memRepo keeps records in a slot-keyed map, mimicking the append-only store
// with the pre-delete upsert discipline the service relies on.
type memRepo struct {
	mu   sync.Mutex
	rows map[string]Record

	deleteCalls int
	createCalls int
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string]Record)}
}

func (m *memRepo) Create(_ context.Context, r *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	m.rows[r.ID] = *r
	return nil
}

func (m *memRepo) CreateBatch(_ context.Context, rows []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	for _, r := range rows {
		m.rows[r.ID] = r
	}
	return nil
}

func (m *memRepo) DeleteBySlot(_ context.Context, employeeID, date, shift string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	delete(m.rows, RecordID(employeeID, date, shift))
	return nil
}

func (m *memRepo) FindBySlot(_ context.Context, employeeID, date, shift string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[RecordID(employeeID, date, shift)]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memRepo) FindByDate(_ context.Context, date string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Record
	for _, r := range m.rows {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) FindAll(_ context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Record
	for _, r := range m.rows {
		out = append(out, r)
	}
	return out, nil
}

type fakeRoster struct {
	employees []employee.EmployeeResponse
	err       error
}

func (f *fakeRoster) GetActiveRoster(context.Context) ([]employee.EmployeeResponse, error) {
	return f.employees, f.err
}

func testRoster() *fakeRoster {
	return &fakeRoster{employees: []employee.EmployeeResponse{
		{ID: "NV001", FullName: "Nguyễn Văn A", Status: employee.StatusActive},
		{ID: "NV002", FullName: "Trần Thị B", Status: employee.StatusActive},
	}}
}

func newTestService(repo Repository, roster RosterProvider, at time.Time) *service {
	return &service{
		repo:   repo,
		roster: roster,
		gate:   writegate.New(writegate.DefaultWait),
		logger: zap.NewNop(),
		now:    func() time.Time { return at },
	}
}

func TestResolveScan_MorningShiftFromClock(t *testing.T) {
	svc := newTestService(newMemRepo(), testRoster(),
		time.Date(2025, 3, 10, 7, 45, 12, 0, time.Local))

	pending, err := svc.ResolveScan(context.Background(), ScanRequest{
		Payload: `{"id":"NV001","name":"Nguyễn Văn A"}`,
		Date:    "2025-03-10",
	})
	require.NoError(t, err)

	assert.Equal(t, "NV001", pending.EmployeeID)
	assert.Equal(t, "Nguyễn Văn A", pending.EmployeeName)
	assert.Equal(t, ShiftMorning, pending.Shift)
	assert.Equal(t, "07:45:12", pending.TimeIn)
	assert.Equal(t, StatusPresent, pending.Status)
	assert.Equal(t, "Quét QR", pending.Notes)
}

func TestResolveScan_AfternoonShiftFromClock(t *testing.T) {
	svc := newTestService(newMemRepo(), testRoster(),
		time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local))

	pending, err := svc.ResolveScan(context.Background(), ScanRequest{
		Payload: "NV002\nTrần Thị B",
		Date:    "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, ShiftAfternoon, pending.Shift)
}

func TestResolveScan_UnknownEmployee(t *testing.T) {
	svc := newTestService(newMemRepo(), testRoster(),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))

	_, err := svc.ResolveScan(context.Background(), ScanRequest{
		Payload: "NV999|Người Lạ",
		Date:    "2025-03-10",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NV999")
}

func TestResolveScan_NothingPersisted(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, testRoster(),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))

	_, err := svc.ResolveScan(context.Background(), ScanRequest{
		Payload: "NV001",
		Date:    "2025-03-10",
	})
	require.NoError(t, err)
	assert.Zero(t, repo.createCalls)
	assert.Zero(t, repo.deleteCalls)
}

func TestCommit_SameSlotTwiceKeepsOneRecord(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, testRoster(),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))

	first, err := svc.Commit(context.Background(), CommitRequest{
		EmployeeID: "NV001", Date: "2025-03-10", Shift: ShiftMorning,
		TimeIn: "07:45:12", Status: StatusPresent,
	})
	require.NoError(t, err)

	second, err := svc.Commit(context.Background(), CommitRequest{
		EmployeeID: "NV001", Date: "2025-03-10", Shift: ShiftMorning,
		TimeIn: "08:10:00", Status: StatusLate, Notes: "Kẹt xe",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.rows, 1)

	kept := repo.rows["NV001-2025-03-10-Sáng"]
	assert.Equal(t, StatusLate, kept.Status)
	assert.Equal(t, "08:10:00", kept.TimeIn)
	assert.Equal(t, "Kẹt xe", kept.Notes)
}

func TestCommit_RejectsUnscannedStatus(t *testing.T) {
	svc := newTestService(newMemRepo(), testRoster(),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))

	_, err := svc.Commit(context.Background(), CommitRequest{
		EmployeeID: "NV001", Date: "2025-03-10", Shift: ShiftMorning,
		Status: StatusUnscanned,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)
}

func TestCommit_RejectsBadDateAndShift(t *testing.T) {
	svc := newTestService(newMemRepo(), testRoster(),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))

	_, err := svc.Commit(context.Background(), CommitRequest{
		EmployeeID: "NV001", Date: "10/03/2025", Shift: ShiftMorning,
		Status: StatusPresent,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)

	_, err = svc.Commit(context.Background(), CommitRequest{
		EmployeeID: "NV001", Date: "2025-03-10", Shift: "Tối",
		Status: StatusPresent,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidShift)
}

func TestCommit_RejectedWhileGateHeld(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, testRoster(),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))
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

	_, err := svc.Commit(context.Background(), CommitRequest{
		EmployeeID: "NV001", Date: "2025-03-10", Shift: ShiftMorning,
		TimeIn: "08:00:00", Status: StatusPresent,
	})
	assert.ErrorIs(t, err, writegate.ErrBusy)
	assert.Zero(t, repo.createCalls)
}

func TestManualCheckIn_SynthesizesTimeFromClock(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, testRoster(),
		time.Date(2025, 3, 10, 13, 5, 30, 0, time.Local))

	rec, err := svc.ManualCheckIn(context.Background(), ManualCheckInRequest{
		EmployeeID: "NV002", Date: "2025-03-10", Shift: ShiftAfternoon,
	})
	require.NoError(t, err)
	assert.Equal(t, "13:05:30", rec.TimeIn)
	assert.Equal(t, StatusPresent, rec.Status)
}

func TestDelete_ReturnsEmptyCellEitherWay(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, testRoster(),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))

	// Slot never existed.
	cell, err := svc.Delete(context.Background(), "NV001", "2025-03-10", ShiftMorning)
	require.NoError(t, err)
	assert.Equal(t, GridCell{Status: StatusUnscanned}, cell)

	// Slot exists, then is cleared.
	_, err = svc.Commit(context.Background(), CommitRequest{
		EmployeeID: "NV001", Date: "2025-03-10", Shift: ShiftMorning,
		TimeIn: "07:45:12", Status: StatusPresent,
	})
	require.NoError(t, err)

	cell, err = svc.Delete(context.Background(), "NV001", "2025-03-10", ShiftMorning)
	require.NoError(t, err)
	assert.Equal(t, GridCell{Status: StatusUnscanned}, cell)
	assert.Empty(t, repo.rows)
}

func TestDailyGrid_DefaultsAndFills(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, testRoster(),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))

	_, err := svc.Commit(context.Background(), CommitRequest{
		EmployeeID: "NV001", Date: "2025-03-10", Shift: ShiftMorning,
		TimeIn: "07:45:12", Status: StatusPresent, Notes: "Quét QR",
	})
	require.NoError(t, err)

	rows, err := svc.DailyGrid(context.Background(), "2025-03-10")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "NV001", rows[0].EmployeeID)
	assert.Equal(t, GridCell{Status: StatusPresent, TimeIn: "07:45:12", Notes: "Quét QR"}, rows[0].Morning)
	assert.Equal(t, GridCell{Status: StatusUnscanned}, rows[0].Afternoon)

	assert.Equal(t, "NV002", rows[1].EmployeeID)
	assert.Equal(t, GridCell{Status: StatusUnscanned}, rows[1].Morning)
	assert.Equal(t, GridCell{Status: StatusUnscanned}, rows[1].Afternoon)
}

func TestSaveGrid_PersistsOnlyTouchedCells(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, testRoster(),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))

	res, err := svc.SaveGrid(context.Background(), SaveGridRequest{
		Date: "2025-03-10",
		Rows: []GridRowInput{
			{
				EmployeeID:   "NV001",
				EmployeeName: "Nguyễn Văn A",
				Morning:      GridCell{Status: StatusPresent, TimeIn: "07:45:12"},
				Afternoon:    GridCell{Status: StatusUnscanned},
			},
			{
				EmployeeID:   "NV002",
				EmployeeName: "Trần Thị B",
				Morning:      GridCell{Status: StatusUnscanned},
				Afternoon:    GridCell{Status: StatusOnLeave, Notes: "Phép năm"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Saved)
	assert.Len(t, repo.rows, 2)

	_, morningSaved := repo.rows["NV001-2025-03-10-Sáng"]
	_, leaveSaved := repo.rows["NV002-2025-03-10-Chiều"]
	assert.True(t, morningSaved)
	assert.True(t, leaveSaved)
}

func TestSaveGrid_AllUnscannedWritesNothing(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, testRoster(),
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))

	res, err := svc.SaveGrid(context.Background(), SaveGridRequest{
		Date: "2025-03-10",
		Rows: []GridRowInput{
			{EmployeeID: "NV001", Morning: GridCell{Status: StatusUnscanned}},
		},
	})
	require.NoError(t, err)
	assert.Zero(t, res.Saved)
	assert.Zero(t, repo.createCalls)
	assert.Zero(t, repo.deleteCalls)
}

// Full morning flow: scan, confirm, correct through the grid, then undo.
func TestCheckInLifecycle(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, testRoster(),
		time.Date(2025, 3, 10, 7, 45, 12, 0, time.Local))

	pending, err := svc.ResolveScan(context.Background(), ScanRequest{
		Payload: `{"id":"NV001","name":"Nguyễn Văn A"}`,
		Date:    "2025-03-10",
	})
	require.NoError(t, err)
	assert.Empty(t, repo.rows, "scan alone must not persist")

	rec, err := svc.Commit(context.Background(), CommitRequest{
		EmployeeID: pending.EmployeeID,
		Date:       pending.Date,
		Shift:      pending.Shift,
		TimeIn:     pending.TimeIn,
		Status:     pending.Status,
		Notes:      pending.Notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "NV001-2025-03-10-Sáng", rec.ID)

	rows, err := svc.DailyGrid(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, rows[0].Morning.Status)

	// Supervisor corrects the status through the grid save.
	_, err = svc.SaveGrid(context.Background(), SaveGridRequest{
		Date: "2025-03-10",
		Rows: []GridRowInput{{
			EmployeeID:   "NV001",
			EmployeeName: "Nguyễn Văn A",
			Morning:      GridCell{Status: StatusLate, TimeIn: pending.TimeIn, Notes: "Trễ 15 phút"},
			Afternoon:    GridCell{Status: StatusUnscanned},
		}},
	})
	require.NoError(t, err)
	assert.Len(t, repo.rows, 1, "correcting a slot must not duplicate it")
	assert.Equal(t, StatusLate, repo.rows["NV001-2025-03-10-Sáng"].Status)

	// Undo: grid converges back to the empty cell.
	cell, err := svc.Delete(context.Background(), "NV001", "2025-03-10", ShiftMorning)
	require.NoError(t, err)
	assert.Equal(t, GridCell{Status: StatusUnscanned}, cell)

	rows, err = svc.DailyGrid(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, GridCell{Status: StatusUnscanned}, rows[0].Morning)
}
