package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/leadmapr/leadmapr/internal/entity"
)

// LeadSessionPayload is one raw search result set headed for archival.
type LeadSessionPayload struct {
	SessionID string        `json:"session_id"`
	UserID    string        `json:"user_id"`
	Keyword   string        `json:"keyword"`
	Location  string        `json:"location"`
	Leads     []entity.Lead `json:"leads"`
	CreatedAt time.Time     `json:"created_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishLeadSession(ctx context.Context, payload LeadSessionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish lead session: %w", err)
	}

	return nil
}
