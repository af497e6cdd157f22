package app

import (
	"os"

	"github.com/haiphamkd/quanlynhansu/internal/attendance"
	"github.com/haiphamkd/quanlynhansu/internal/auth"
	"github.com/haiphamkd/quanlynhansu/internal/dropdown"
	"github.com/haiphamkd/quanlynhansu/internal/employee"
	"github.com/haiphamkd/quanlynhansu/internal/evaluation"
	"github.com/haiphamkd/quanlynhansu/internal/fund"
	"github.com/haiphamkd/quanlynhansu/internal/proposal"
	"github.com/haiphamkd/quanlynhansu/internal/report"
	"github.com/haiphamkd/quanlynhansu/internal/shared/connection"
	"github.com/haiphamkd/quanlynhansu/internal/shift"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, db, gormDB, redisClient)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&attendance.Record{},
		&fund.Transaction{},
		&report.Report{},
		&evaluation.Evaluation{},
		&proposal.Proposal{},
		&shift.Shift{},
		&dropdown.Option{},
		&auth.User{},
	); err != nil {
		return err
	}

	// counters and outbox_events are driven with raw SQL, so their schema is
	// created here rather than through AutoMigrate.
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS counters (
			counter_type varchar(50) PRIMARY KEY,
			last_value   bigint NOT NULL,
			updated_at   timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id             uuid PRIMARY KEY,
			request_id     varchar(100),
			aggregate_type varchar(50) NOT NULL,
			aggregate_id   varchar(50) NOT NULL,
			event_type     varchar(100) NOT NULL,
			topic          varchar(200) NOT NULL,
			payload        jsonb NOT NULL,
			status         varchar(20) NOT NULL DEFAULT 'pending',
			retry_count    int NOT NULL DEFAULT 0,
			next_retry_at  timestamptz,
			error_message  varchar(500),
			processed_at   timestamptz,
			created_at     timestamptz NOT NULL DEFAULT now(),
			updated_at     timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_status ON outbox_events (status, next_retry_at)`,
	}
	for _, stmt := range ddl {
		if err := gormDB.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
