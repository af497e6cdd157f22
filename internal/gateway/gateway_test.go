package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haiphamkd/quanlynhansu/internal/attendance"
	"github.com/haiphamkd/quanlynhansu/internal/employee"
	employeeerrors "github.com/haiphamkd/quanlynhansu/internal/employee/errors"
)

type fakeEmployeeService struct {
	employee.Service

	employees []employee.EmployeeResponse
	deleteErr error
}

func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.employees, nil
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

type fakeAttendanceService struct {
	attendance.Service

	saved []attendance.SaveGridRequest
}

func (f *fakeAttendanceService) SaveGrid(ctx context.Context, req attendance.SaveGridRequest) (attendance.SaveGridResponse, error) {
	f.saved = append(f.saved, req)

	count := 0
	for _, row := range req.Rows {
		if row.Morning.Status != "" {
			count++
		}
		if row.Afternoon.Status != "" {
			count++
		}
	}
	return attendance.SaveGridResponse{Saved: count}, nil
}

func TestParseAction(t *testing.T) {
	t.Run("login decodes credentials", func(t *testing.T) {
		a, err := ParseAction([]byte(`{"action":"login","username":"annv","password":"123456"}`))
		require.NoError(t, err)

		login, ok := a.(LoginAction)
		require.True(t, ok)
		assert.Equal(t, "annv", login.Username)
		assert.Equal(t, "123456", login.Password)
	})

	t.Run("addFund decodes the amount", func(t *testing.T) {
		a, err := ParseAction([]byte(`{"action":"addFund","date":"2025-03-10","type":"Thu","amount":500000,"content":"Thu quỹ tháng 3","performer":"Nguyễn Văn A"}`))
		require.NoError(t, err)

		add, ok := a.(AddFundAction)
		require.True(t, ok)
		assert.Equal(t, "Thu", add.Type)
		assert.Equal(t, "500000", add.Amount.String())
	})

	t.Run("saveAttendance decodes the record list", func(t *testing.T) {
		a, err := ParseAction([]byte(`{"action":"saveAttendance","records":[{"employeeId":"NV001","date":"2025-03-10","shift":"Sáng","status":"Có mặt","timeIn":"07:30:00"}]}`))
		require.NoError(t, err)

		save, ok := a.(SaveAttendanceAction)
		require.True(t, ok)
		require.Len(t, save.Records, 1)
		assert.Equal(t, "NV001", save.Records[0].EmployeeID)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		_, err := ParseAction([]byte(`{"action":"dropTables"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dropTables")
	})

	t.Run("missing action is rejected", func(t *testing.T) {
		_, err := ParseAction([]byte(`{"username":"annv"}`))
		require.Error(t, err)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		_, err := ParseAction([]byte(`{"action":`))
		require.Error(t, err)
	})
}

func TestMapToGrid(t *testing.T) {
	records := []AttendanceRecordInput{
		{EmployeeID: "NV001", EmployeeName: "Nguyễn Văn A", Date: "2025-03-10", Shift: attendance.ShiftMorning, Status: attendance.StatusPresent, TimeIn: "07:30:00"},
		{EmployeeID: "NV001", EmployeeName: "Nguyễn Văn A", Date: "2025-03-10", Shift: attendance.ShiftAfternoon, Status: attendance.StatusPresent, TimeIn: "13:05:00"},
		{EmployeeID: "NV002", EmployeeName: "Trần Thị B", Date: "2025-03-11", Shift: attendance.ShiftMorning, Status: attendance.StatusOnLeave},
	}

	byDate := mapToGrid(records)
	require.Len(t, byDate, 2)

	day1 := byDate["2025-03-10"]
	require.Len(t, day1, 1, "both shifts of one employee collapse into one row")
	assert.Equal(t, "NV001", day1[0].EmployeeID)
	assert.Equal(t, "07:30:00", day1[0].Morning.TimeIn)
	assert.Equal(t, "13:05:00", day1[0].Afternoon.TimeIn)

	day2 := byDate["2025-03-11"]
	require.Len(t, day2, 1)
	assert.Equal(t, attendance.StatusOnLeave, day2[0].Morning.Status)
	assert.Empty(t, day2[0].Afternoon.Status)
}

func TestDispatchSaveAttendance(t *testing.T) {
	att := &fakeAttendanceService{}
	router := NewRouter(nil, nil, att, nil, nil, nil, nil, nil, nil)

	result, err := router.Dispatch(context.Background(), SaveAttendanceAction{
		Records: []AttendanceRecordInput{
			{EmployeeID: "NV001", Date: "2025-03-10", Shift: attendance.ShiftMorning, Status: attendance.StatusPresent},
			{EmployeeID: "NV002", Date: "2025-03-10", Shift: attendance.ShiftAfternoon, Status: attendance.StatusPresent},
			{EmployeeID: "NV001", Date: "2025-03-11", Shift: attendance.ShiftMorning, Status: attendance.StatusOnLeave},
		},
	})
	require.NoError(t, err)

	require.Len(t, att.saved, 2, "one grid save per date")
	assert.Equal(t, "2025-03-10", att.saved[0].Date)
	assert.Equal(t, "2025-03-11", att.saved[1].Date)

	payload, ok := result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 3, payload["saved"])
	assert.Equal(t, true, payload["success"])
}

func TestExecEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newExecServer := func(emp *fakeEmployeeService) *gin.Engine {
		router := NewRouter(nil, emp, nil, nil, nil, nil, nil, nil, nil)
		h := NewHandler(router)

		engine := gin.New()
		engine.POST("/exec", h.Exec)
		return engine
	}

	t.Run("success returns the bare result", func(t *testing.T) {
		engine := newExecServer(&fakeEmployeeService{
			employees: []employee.EmployeeResponse{{ID: "NV001", FullName: "Nguyễn Văn A", Status: "Đang làm việc"}},
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/exec", strings.NewReader(`{"action":"getEmployees"}`))
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"NV001"`)
		assert.NotContains(t, rec.Body.String(), `"error"`)
	})

	t.Run("service failure is reported in band", func(t *testing.T) {
		engine := newExecServer(&fakeEmployeeService{deleteErr: employeeerrors.ErrEmployeeNotFound})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/exec", strings.NewReader(`{"action":"deleteEmployee","id":"NV999"}`))
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "legacy clients read the error field, not the status")
		assert.Contains(t, rec.Body.String(), `"error"`)
	})

	t.Run("unknown action is reported in band", func(t *testing.T) {
		engine := newExecServer(&fakeEmployeeService{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/exec", strings.NewReader(`{"action":"formatDisk"}`))
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "formatDisk")
	})
}
