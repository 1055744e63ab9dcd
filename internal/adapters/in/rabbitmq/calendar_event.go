package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dbondarchuk/vivid-availability/internal/core/ports/out"
)

type CacheCalendarEventMessage struct {
	CalendarID uuid.UUID `json:"calendar_id"`
	EventID    string    `json:"event_id"`
}

func (l *CacheHitListener) startCalendarEventQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueConfig.CalendarQueueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}
	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMq.QueueConfig.CalendarQueueBind,
		l.cfg.RabbitMq.QueueConfig.CalendarQueueExchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processCalendarEventMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *CacheHitListener) processCalendarEventMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := l.parseCacheMessageRoutingKey(ctx, msg)
	if err != nil {
		return err
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeCalendarEvent {
		return nil
	}

	var msgJson CacheCalendarEventMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("calendar_event.message.received", out.LogFields{
		"msg":       msgJson,
		"msgString": string(msg.Body),
	})

	// Любое изменение события делает закэшированные интервалы календаря устаревшими
	switch cacheMessageRoutingKey.CacheHitType {
	case CacheHitTypeStore, CacheHitTypeInvalidate:
		go l.useCase.InvalidateCalendarCache(ctx, msgJson.CalendarID)

		l.logger.Info("calendar_event.message.invalidated", out.LogFields{
			"calendar_id": msgJson.CalendarID,
			"event_id":    msgJson.EventID,
		})
	}

	return nil
}
