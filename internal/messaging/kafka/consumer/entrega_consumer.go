package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-epi/internal/bootstrap"
	"go-epi/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	expiryAlertWindowDays = 90
	expiryAlertDedupTTL   = 24 * time.Hour
)

// ConsumeEntregaLifecycle watches delivery events and raises an expiry
// alert whenever equipment was handed out with less than 90 days of
// validity left. Redis SetNX dedupes alerts per CA and employee so the
// same delivery never alerts twice within the TTL.
func ConsumeEntregaLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.entrega_lifecycle")
	log.Info("entrega lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("entrega lifecycle consumer stopped")
				return
			}
			log.Error("fetch entrega lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EntregaLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode entrega lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		checkExpiry(ctx, event, rdb, auditLogger, log)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit entrega lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("entrega lifecycle event processed",
			zap.String("event_type", event.EventType),
			zap.String("numero", event.Numero),
			zap.String("ca", event.CA),
		)
	}
}

func checkExpiry(
	ctx context.Context,
	event events.EntregaLifecycleEvent,
	rdb *redis.Client,
	auditLogger bootstrap.AuditLogger,
	log *zap.Logger,
) {
	validade, err := time.Parse("2006-01-02", event.Validade)
	if err != nil {
		log.Error("invalid validade in entrega event",
			zap.String("validade", event.Validade),
			zap.String("ca", event.CA),
			zap.Error(err),
		)
		return
	}

	daysLeft := int(time.Until(validade).Hours() / 24)
	if daysLeft > expiryAlertWindowDays {
		return
	}

	if rdb != nil {
		dedupKey := fmt.Sprintf("alerta:vencimento:%s:%s", event.CA, event.FuncionarioCPF)
		created, err := rdb.SetNX(ctx, dedupKey, "1", expiryAlertDedupTTL).Result()
		if err != nil {
			log.Error("expiry alert dedup check failed", zap.String("key", dedupKey), zap.Error(err))
		} else if !created {
			return
		}
	}

	log.Warn("epi delivered close to expiry",
		zap.String("ca", event.CA),
		zap.String("tipo", event.Tipo),
		zap.String("funcionario_cpf", event.FuncionarioCPF),
		zap.String("validade", event.Validade),
		zap.Int("days_left", daysLeft),
	)

	auditLogger.Log(ctx, bootstrap.AuditLog{
		Action:  "EPI_EXPIRY_ALERT",
		Message: "Equipment delivered with validity inside the alert window",
		Meta: map[string]any{
			"ca":              event.CA,
			"tipo":            event.Tipo,
			"funcionario_cpf": event.FuncionarioCPF,
			"validade":        event.Validade,
			"days_left":       daysLeft,
			"numero":          event.Numero,
		},
	})
}
