package gateway

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/haiphamkd/quanlynhansu/internal/attendance"
	"github.com/haiphamkd/quanlynhansu/internal/auth"
	"github.com/haiphamkd/quanlynhansu/internal/dropdown"
	"github.com/haiphamkd/quanlynhansu/internal/employee"
	"github.com/haiphamkd/quanlynhansu/internal/evaluation"
	"github.com/haiphamkd/quanlynhansu/internal/fund"
	"github.com/haiphamkd/quanlynhansu/internal/proposal"
	"github.com/haiphamkd/quanlynhansu/internal/report"
	"github.com/haiphamkd/quanlynhansu/internal/shift"
)

// Router dispatches decoded legacy actions onto the regular services. It is a
// compatibility shim for old clients; the REST routes are the primary surface
// and carry the same semantics.
type Router struct {
	auth        auth.Service
	employees   employee.Service
	attendances attendance.Service
	funds       fund.Service
	reports     report.Service
	evaluations evaluation.Service
	proposals   proposal.Service
	shifts      shift.Service
	dropdowns   dropdown.Service
	logger      *zap.Logger
}

func NewRouter(
	authSvc auth.Service,
	employeeSvc employee.Service,
	attendanceSvc attendance.Service,
	fundSvc fund.Service,
	reportSvc report.Service,
	evaluationSvc evaluation.Service,
	proposalSvc proposal.Service,
	shiftSvc shift.Service,
	dropdownSvc dropdown.Service,
	logger ...*zap.Logger,
) *Router {
	l := zap.L().Named("gateway.router")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &Router{
		auth:        authSvc,
		employees:   employeeSvc,
		attendances: attendanceSvc,
		funds:       fundSvc,
		reports:     reportSvc,
		evaluations: evaluationSvc,
		proposals:   proposalSvc,
		shifts:      shiftSvc,
		dropdowns:   dropdownSvc,
		logger:      l,
	}
}

type legacyDropdownOption struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Dispatch handles every Action variant. The switch is exhaustive over the
// decoder table; an unlisted variant is a programming error, not user input.
func (r *Router) Dispatch(ctx context.Context, a Action) (interface{}, error) {
	r.logger.Debug("dispatching legacy action", zap.String("action", a.actionName()))

	switch act := a.(type) {
	case LoginAction:
		accessToken, refreshToken, user, err := r.auth.Login(ctx, act.Username, act.Password)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"user":         user,
			"token":        accessToken,
			"refreshToken": refreshToken,
		}, nil

	case GetEmployeesAction:
		return r.employees.GetAll(ctx)
	case AddEmployeeAction:
		return r.employees.Create(ctx, act.CreateEmployeeRequest)
	case UpdateEmployeeAction:
		return r.employees.Update(ctx, act.ID, act.UpdateEmployeeRequest)
	case DeleteEmployeeAction:
		if err := r.employees.Delete(ctx, act.ID); err != nil {
			return nil, err
		}
		return map[string]bool{"success": true}, nil

	case GetAttendanceAction:
		return r.attendances.History(ctx)
	case SaveAttendanceAction:
		return r.saveAttendance(ctx, act)

	case GetFundsAction:
		return r.funds.GetAll(ctx)
	case AddFundAction:
		return r.funds.Record(ctx, act.RecordTransactionRequest)

	case GetReportsAction:
		return r.reports.GetAll(ctx)
	case AddReportAction:
		return r.reports.Save(ctx, act.SaveReportRequest)
	case DeleteReportAction:
		if err := r.reports.Delete(ctx, act.ID); err != nil {
			return nil, err
		}
		return map[string]bool{"success": true}, nil

	case GetEvaluationsAction:
		return r.evaluations.GetAll(ctx)
	case AddEvaluationAction:
		return r.evaluations.Create(ctx, act.CreateEvaluationRequest)
	case DeleteEvaluationAction:
		if err := r.evaluations.Delete(ctx, act.ID); err != nil {
			return nil, err
		}
		return map[string]bool{"success": true}, nil

	case GetProposalsAction:
		return r.proposals.GetAll(ctx)
	case AddProposalAction:
		return r.proposals.Save(ctx, act.SaveProposalRequest)

	case GetShiftsAction:
		return r.shifts.GetAll(ctx)
	case SaveShiftAction:
		return r.shifts.Save(ctx, act.SaveShiftRequest)

	case GetDropdownsAction:
		return r.flattenDropdowns(ctx)

	case GetUsersAction:
		return r.auth.ListAccounts(ctx)

	default:
		return nil, fmt.Errorf("unhandled action %q", a.actionName())
	}
}

// saveAttendance regroups the flat record list by date and replays each group
// through the grid save, keeping the overwrite semantics old clients expect.
func (r *Router) saveAttendance(ctx context.Context, act SaveAttendanceAction) (interface{}, error) {
	byDate := mapToGrid(act.Records)

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	saved := 0
	for _, date := range dates {
		resp, err := r.attendances.SaveGrid(ctx, attendance.SaveGridRequest{
			Date: date,
			Rows: byDate[date],
		})
		if err != nil {
			return nil, err
		}
		saved += resp.Saved
	}
	return map[string]interface{}{"success": true, "saved": saved}, nil
}

// flattenDropdowns turns the grouped option map back into the flat
// {type, value} rows the old client renders.
func (r *Router) flattenDropdowns(ctx context.Context) (interface{}, error) {
	grouped, err := r.dropdowns.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	types := make([]string, 0, len(grouped))
	for t := range grouped {
		types = append(types, t)
	}
	sort.Strings(types)

	options := make([]legacyDropdownOption, 0)
	for _, t := range types {
		for _, v := range grouped[t] {
			options = append(options, legacyDropdownOption{Type: t, Value: v})
		}
	}
	return options, nil
}
