package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/modbotdev/budget-ledger/internal/config"
	"github.com/modbotdev/budget-ledger/internal/observability/metrics"
	"github.com/modbotdev/budget-ledger/internal/observability/tracing"
)

// TipHandler consumes one validated tip event. A returned error requeues the
// delivery.
type TipHandler func(ctx context.Context, event *TipEvent) error

type QueueManager struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open queue channel: %w", err)
	}

	if _, err := channel.QueueDeclare(
		cfg.TipQueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.TipQueueName, err)
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
	}, nil
}

// StartTipConsumer consumes tip events until ctx is cancelled. Malformed
// payloads are dropped; handler failures are requeued.
func (qm *QueueManager) StartTipConsumer(ctx context.Context, handler TipHandler) error {
	consumerTag := "budget-ledger-" + uuid.NewString()
	deliveries, err := qm.channel.Consume(
		qm.cfg.TipQueueName,
		consumerTag,
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming %s: %w", qm.cfg.TipQueueName, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					log.Ctx(ctx).Warn().Msg("tip delivery channel closed")
					return
				}
				qm.handleDelivery(ctx, &delivery, handler)
			}
		}
	}()

	log.Ctx(ctx).Info().
		Str("queue", qm.cfg.TipQueueName).
		Str("consumer_tag", consumerTag).
		Msg("tip consumer started")

	return nil
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type delivery interface {
	acknowledger
	Payload() []byte
}

type amqpDelivery struct {
	*amqp.Delivery
}

func (d amqpDelivery) Payload() []byte {
	return d.Body
}

func (qm *QueueManager) handleDelivery(ctx context.Context, d *amqp.Delivery, handler TipHandler) {
	processDelivery(ctx, amqpDelivery{d}, handler)
}

func processDelivery(ctx context.Context, d delivery, handler TipHandler) {
	ctx = tracing.InjectTraceID(ctx)
	logger := log.Ctx(ctx)

	var event TipEvent
	if err := json.Unmarshal(d.Payload(), &event); err != nil {
		logger.Error().Err(err).Msg("dropping malformed tip event payload")
		metrics.IncTipEvent("dropped")
		if nackErr := d.Nack(false, false); nackErr != nil {
			logger.Error().Err(nackErr).Msg("failed to nack malformed tip event")
		}
		return
	}

	if err := event.Validate(); err != nil {
		logger.Error().Err(err).
			Str("event_id", event.EventID).
			Msg("dropping invalid tip event")
		metrics.IncTipEvent("dropped")
		if nackErr := d.Nack(false, false); nackErr != nil {
			logger.Error().Err(nackErr).Msg("failed to nack invalid tip event")
		}
		return
	}

	if err := handler(ctx, &event); err != nil {
		logger.Error().Err(err).
			Str("event_id", event.EventID).
			Msg("tip event handling failed, requeueing")
		metrics.IncTipEvent("requeued")
		if nackErr := d.Nack(false, true); nackErr != nil {
			logger.Error().Err(nackErr).Msg("failed to nack tip event")
		}
		return
	}

	metrics.IncTipEvent("processed")
	if err := d.Ack(false); err != nil {
		logger.Error().Err(err).
			Str("event_id", event.EventID).
			Msg("failed to ack tip event")
	}
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")
	if qm.channel != nil {
		if err := qm.channel.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close queue channel")
		}
	}
	if qm.conn != nil {
		if err := qm.conn.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close queue connection")
		}
	}
}
