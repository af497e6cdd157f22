package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/haiphamkd/quanlynhansu/internal/auth"
	"github.com/haiphamkd/quanlynhansu/internal/events"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle provisions a staff login for every new employee.
// The username is derived from the Vietnamese full name; a duplicate account
// means the event was already handled and the message is committed as done.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	authService auth.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = authService.ProvisionAccount(ctx, event.EmployeeID, event.FullName)
		if err != nil {
			if isUniqueUsernameViolation(err) {
				log.Warn("account already exists for event, skipping",
					zap.String("employee_id", event.EmployeeID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("provision staff account failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("staff account provisioned from employee_created event",
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

func isUniqueUsernameViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_users_username"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_users_username")
}
