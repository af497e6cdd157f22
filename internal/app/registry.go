package app

import (
	"database/sql"

	"github.com/haiphamkd/quanlynhansu/internal/attendance"
	"github.com/haiphamkd/quanlynhansu/internal/auth"
	"github.com/haiphamkd/quanlynhansu/internal/dropdown"
	"github.com/haiphamkd/quanlynhansu/internal/employee"
	"github.com/haiphamkd/quanlynhansu/internal/evaluation"
	"github.com/haiphamkd/quanlynhansu/internal/fund"
	"github.com/haiphamkd/quanlynhansu/internal/gateway"
	"github.com/haiphamkd/quanlynhansu/internal/messaging/kafka"
	"github.com/haiphamkd/quanlynhansu/internal/middleware"
	"github.com/haiphamkd/quanlynhansu/internal/proposal"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"
	"github.com/haiphamkd/quanlynhansu/internal/report"
	"github.com/haiphamkd/quanlynhansu/internal/shared/counter"
	"github.com/haiphamkd/quanlynhansu/internal/shared/writegate"
	"github.com/haiphamkd/quanlynhansu/internal/shift"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	dropdownRepo := dropdown.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	evaluationRepo := evaluation.NewRepository(gormDB)
	fundRepo := fund.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	proposalRepo := proposal.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// One advisory gate shared by the slot-overwrite writers so an attendance
	// save and a ledger append never interleave their read-then-write windows.
	gate := writegate.New(writegate.DefaultWait)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	attendanceService := attendance.NewService(attendanceRepo, employeeService, gate)
	dropdownService := dropdown.NewService(dropdownRepo)
	evaluationService := evaluation.NewService(evaluationRepo, employeeService)
	fundService := fund.NewServiceWithOutbox(db, fundRepo, outboxRepo, gate)
	proposalService := proposal.NewService(proposalRepo)
	reportService := report.NewService(reportRepo)
	shiftService := shift.NewService(shiftRepo, gate)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	dropdownHandler := dropdown.NewHandler(dropdownService)
	employeeHandler := employee.NewHandler(employeeService)
	evaluationHandler := evaluation.NewHandler(evaluationService)
	fundHandler := fund.NewHandler(fundService)
	proposalHandler := proposal.NewHandler(proposalService)
	reportHandler := report.NewHandler(reportService)
	shiftHandler := shift.NewHandler(shiftService)

	gatewayRouter := gateway.NewRouter(
		authService,
		employeeService,
		attendanceService,
		fundService,
		reportService,
		evaluationService,
		proposalService,
		shiftService,
		dropdownService,
	)
	gatewayHandler := gateway.NewHandler(gatewayRouter)

	// --- Middleware & Routes ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		dropdown.RegisterRoutes(api, dropdownHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		evaluation.RegisterRoutes(api, evaluationHandler, rbacService)
		fund.RegisterRoutes(api, fundHandler, rbacService, rdb)
		proposal.RegisterRoutes(api, proposalHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		shift.RegisterRoutes(api, shiftHandler, rbacService)
		gateway.RegisterRoutes(api, gatewayHandler)
	}

	return nil
}
