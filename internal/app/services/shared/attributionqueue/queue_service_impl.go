package attributionqueue

import (
	"context"
	"fmt"
	"sync"

	"kurabi-service/internal/app/contracts"
	"kurabi-service/internal/app/models"
	"kurabi-service/internal/pkg/constvars"
	"kurabi-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// queueMessage is the payload stored in RabbitMQ. FailedCount travels with
// the row so a requeued message remembers how many flushes it survived.
type queueMessage struct {
	Log         models.ReservationLog `json:"log"`
	FailedCount int                   `json:"failed_count"`
}

type queueService struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	dlqName   string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewQueueService declares the durable queue pair, enables publisher
// confirms, and caps unacked deliveries in flight.
func NewQueueService(conn *amqp.Connection, log *zap.Logger, queueName, dlqName string, prefetch int) (contracts.ReservationQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, name := range []string{queueName, dlqName} {
		_, err = ch.QueueDeclare(
			name,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			return nil, err
		}
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &queueService{
		ch:        ch,
		log:       log,
		queueName: queueName,
		dlqName:   dlqName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *queueService) Enqueue(ctx context.Context, log *models.ReservationLog) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("attributionQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, log.ReservationID),
	)

	return s.publish(ctx, s.queueName, queueMessage{Log: *log})
}

func (s *queueService) Reenqueue(ctx context.Context, log *models.ReservationLog, failedCount int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("attributionQueue.Reenqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, log.ReservationID),
		zap.Int(constvars.LoggingFailedCountKey, failedCount),
	)

	return s.publish(ctx, s.queueName, queueMessage{Log: *log, FailedCount: failedCount})
}

func (s *queueService) EnqueueToDLQ(ctx context.Context, log *models.ReservationLog, failedCount int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("attributionQueue.EnqueueToDLQ called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, log.ReservationID),
		zap.Int(constvars.LoggingFailedCountKey, failedCount),
	)

	return s.publish(ctx, s.dlqName, queueMessage{Log: *log, FailedCount: failedCount})
}

// FetchN retrieves up to max messages using basic.get without auto-ack.
// Undecodable payloads are acked and parked on the DLQ so a poison message
// never loops the worker.
func (s *queueService) FetchN(ctx context.Context, max int) ([]contracts.QueuedReservationLog, error) {
	if max <= 0 {
		max = 1
	}
	items := make([]contracts.QueuedReservationLog, 0, max)

	for i := 0; i < max; i++ {
		delivery, ok, err := s.ch.Get(s.queueName, false)
		if err != nil {
			return nil, exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
		}
		if !ok {
			break
		}
		var payload queueMessage
		if err := json.Unmarshal(delivery.Body, &payload); err != nil {
			_ = delivery.Ack(false)
			_ = s.publishRaw(ctx, s.dlqName, delivery.Body)
			continue
		}
		items = append(items, contracts.QueuedReservationLog{
			Log:         payload.Log,
			FailedCount: payload.FailedCount,
			DeliveryTag: delivery.DeliveryTag,
		})
	}

	return items, nil
}

func (s *queueService) Ack(deliveryTag uint64) error {
	if err := s.ch.Ack(deliveryTag, false); err != nil {
		return exceptions.ErrRabbitMQAckMessage(err)
	}
	return nil
}

func (s *queueService) publish(ctx context.Context, queue string, message queueMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, queue, body)
}

func (s *queueService) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
