package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/leadmapr/leadmapr/internal/entity"
)

// Worker drains the archival queue into the lead_sessions table.
type Worker struct {
	Channel  *amqp.Channel
	Sessions entity.LeadSessionRepositoryInterface
}

func NewWorker(ch *amqp.Channel, sessions entity.LeadSessionRepositoryInterface) *Worker {
	return &Worker{
		Channel:  ch,
		Sessions: sessions,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[WORKER] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadSessionPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] malformed payload, sending to DLQ: %s", err)
				// Rotten message: reject without requeue so it cannot jam the queue.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("[WORKER] failed to archive session %s: %s", payload.SessionID, err)
				d.Nack(false, false)
			} else {
				log.Printf("[WORKER] archived session %s (%d leads)", payload.SessionID, len(payload.Leads))
				d.Ack(false)
			}
		}
	}()

	log.Printf("[WORKER] consuming queue '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload LeadSessionPayload) error {
	session := &entity.LeadSession{
		ID:        payload.SessionID,
		UserID:    payload.UserID,
		Keyword:   payload.Keyword,
		Location:  payload.Location,
		Leads:     payload.Leads,
		CreatedAt: payload.CreatedAt,
	}
	return w.Sessions.Create(ctx, session)
}
