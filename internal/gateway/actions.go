package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/haiphamkd/quanlynhansu/internal/attendance"
	"github.com/haiphamkd/quanlynhansu/internal/employee"
	"github.com/haiphamkd/quanlynhansu/internal/evaluation"
	"github.com/haiphamkd/quanlynhansu/internal/fund"
	"github.com/haiphamkd/quanlynhansu/internal/proposal"
	"github.com/haiphamkd/quanlynhansu/internal/report"
	"github.com/haiphamkd/quanlynhansu/internal/shift"
)

// Action is one decoded legacy request. The old client speaks a single POST
// endpoint with a string "action" field; each action is its own variant type
// so the router can match exhaustively instead of falling through on strings.
type Action interface {
	actionName() string
}

type LoginAction struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type GetEmployeesAction struct{}

type AddEmployeeAction struct {
	employee.CreateEmployeeRequest
}

type UpdateEmployeeAction struct {
	ID string `json:"id"`
	employee.UpdateEmployeeRequest
}

type DeleteEmployeeAction struct {
	ID string `json:"id"`
}

type GetAttendanceAction struct{}

// SaveAttendanceAction carries the pre-filtered, non-default grid rows the
// client wants persisted with overwrite semantics.
type SaveAttendanceAction struct {
	Records []AttendanceRecordInput `json:"records"`
}

type AttendanceRecordInput struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	Shift        string `json:"shift"`
	Status       string `json:"status"`
	TimeIn       string `json:"timeIn"`
	Notes        string `json:"notes"`
}

type GetFundsAction struct{}

type AddFundAction struct {
	fund.RecordTransactionRequest
}

type GetReportsAction struct{}

type AddReportAction struct {
	report.SaveReportRequest
}

type DeleteReportAction struct {
	ID string `json:"id"`
}

type GetEvaluationsAction struct{}

type AddEvaluationAction struct {
	evaluation.CreateEvaluationRequest
}

type DeleteEvaluationAction struct {
	ID string `json:"id"`
}

type GetProposalsAction struct{}

type AddProposalAction struct {
	proposal.SaveProposalRequest
}

type GetShiftsAction struct{}

type SaveShiftAction struct {
	shift.SaveShiftRequest
}

type GetDropdownsAction struct{}

type GetUsersAction struct{}

func (LoginAction) actionName() string            { return "login" }
func (GetEmployeesAction) actionName() string     { return "getEmployees" }
func (AddEmployeeAction) actionName() string      { return "addEmployee" }
func (UpdateEmployeeAction) actionName() string   { return "updateEmployee" }
func (DeleteEmployeeAction) actionName() string   { return "deleteEmployee" }
func (GetAttendanceAction) actionName() string    { return "getAttendance" }
func (SaveAttendanceAction) actionName() string   { return "saveAttendance" }
func (GetFundsAction) actionName() string         { return "getFunds" }
func (AddFundAction) actionName() string          { return "addFund" }
func (GetReportsAction) actionName() string       { return "getReports" }
func (AddReportAction) actionName() string        { return "addReport" }
func (DeleteReportAction) actionName() string     { return "deleteReport" }
func (GetEvaluationsAction) actionName() string   { return "getEvaluations" }
func (AddEvaluationAction) actionName() string    { return "addEvaluation" }
func (DeleteEvaluationAction) actionName() string { return "deleteEvaluation" }
func (GetProposalsAction) actionName() string     { return "getProposals" }
func (AddProposalAction) actionName() string      { return "addProposal" }
func (GetShiftsAction) actionName() string        { return "getShifts" }
func (SaveShiftAction) actionName() string        { return "saveShift" }
func (GetDropdownsAction) actionName() string     { return "getDropdowns" }
func (GetUsersAction) actionName() string         { return "getUsers" }

// decoders maps each wire action name to its variant constructor. An action
// missing here is an unknown action, never a silent fallthrough.
var decoders = map[string]func(raw []byte) (Action, error){
	"login":            decodeInto[LoginAction],
	"getEmployees":     decodeInto[GetEmployeesAction],
	"addEmployee":      decodeInto[AddEmployeeAction],
	"updateEmployee":   decodeInto[UpdateEmployeeAction],
	"deleteEmployee":   decodeInto[DeleteEmployeeAction],
	"getAttendance":    decodeInto[GetAttendanceAction],
	"saveAttendance":   decodeInto[SaveAttendanceAction],
	"getFunds":         decodeInto[GetFundsAction],
	"addFund":          decodeInto[AddFundAction],
	"getReports":       decodeInto[GetReportsAction],
	"addReport":        decodeInto[AddReportAction],
	"deleteReport":     decodeInto[DeleteReportAction],
	"getEvaluations":   decodeInto[GetEvaluationsAction],
	"addEvaluation":    decodeInto[AddEvaluationAction],
	"deleteEvaluation": decodeInto[DeleteEvaluationAction],
	"getProposals":     decodeInto[GetProposalsAction],
	"addProposal":      decodeInto[AddProposalAction],
	"getShifts":        decodeInto[GetShiftsAction],
	"saveShift":        decodeInto[SaveShiftAction],
	"getDropdowns":     decodeInto[GetDropdownsAction],
	"getUsers":         decodeInto[GetUsersAction],
}

func decodeInto[T Action](raw []byte) (Action, error) {
	var a T
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	return a, nil
}

// ParseAction decodes a legacy request body into its typed variant.
func ParseAction(body []byte) (Action, error) {
	var envelope struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode action envelope: %w", err)
	}
	if envelope.Action == "" {
		return nil, fmt.Errorf("missing action field")
	}

	decode, ok := decoders[envelope.Action]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", envelope.Action)
	}
	return decode(body)
}

// mapToGrid regroups the flat legacy record list into per-date grid saves.
func mapToGrid(records []AttendanceRecordInput) map[string][]attendance.GridRowInput {
	type key struct{ date, employeeID string }
	rowIndex := make(map[key]int)
	byDate := make(map[string][]attendance.GridRowInput)

	for _, rec := range records {
		k := key{rec.Date, rec.EmployeeID}
		rows := byDate[rec.Date]
		idx, ok := rowIndex[k]
		if !ok {
			rows = append(rows, attendance.GridRowInput{
				EmployeeID:   rec.EmployeeID,
				EmployeeName: rec.EmployeeName,
			})
			idx = len(rows) - 1
			rowIndex[k] = idx
		}

		cell := attendance.GridCell{Status: rec.Status, TimeIn: rec.TimeIn, Notes: rec.Notes}
		if rec.Shift == attendance.ShiftMorning {
			rows[idx].Morning = cell
		} else {
			rows[idx].Afternoon = cell
		}
		byDate[rec.Date] = rows
	}

	return byDate
}
