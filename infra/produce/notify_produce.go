package produce

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ContactMessage is the event published when a visitor submits the
// contact form.
type ContactMessage struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type NotifyService struct {
	channel *amqp.Channel
}

func InitNotifyService(channel *amqp.Channel) *NotifyService {
	return &NotifyService{
		channel: channel,
	}
}

// SendContactNotification publishes a contact-form event for the
// notifier service. The submission is already persisted when this is
// called; a publish failure is the caller's to log, not to surface.
func (s *NotifyService) SendContactNotification(ctx context.Context, name, email, subject, message string) error {
	event := ContactMessage{
		Type:    "contact",
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}

	return s.publish(ctx, "notification.contact", event)
}

func (s *NotifyService) publish(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = s.channel.PublishWithContext(ctx,
		NotificationExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
