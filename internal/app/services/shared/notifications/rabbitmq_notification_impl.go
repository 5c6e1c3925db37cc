package notifications

import (
	"context"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQNotificationService struct {
	Channel     *amqp091.Channel
	Queue       string
	UrgentQueue string
}

// NewRabbitMQNotificationService declares both queues durable so urgent
// triage alerts survive a broker restart.
func NewRabbitMQNotificationService(rabbitMQConnection *amqp091.Connection, queue, urgentQueue string) (contracts.NotificationService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	for _, queueName := range []string{queue, urgentQueue} {
		_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
		if err != nil {
			return nil, err
		}
	}

	return &rabbitMQNotificationService{
		Channel:     channel,
		Queue:       queue,
		UrgentQueue: urgentQueue,
	}, nil
}

func (s *rabbitMQNotificationService) Publish(ctx context.Context, notification *contracts.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	queueName := s.Queue
	if notification.Priority == contracts.NotificationPriorityUrgent {
		queueName = s.UrgentQueue
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", queueName, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	return nil
}
