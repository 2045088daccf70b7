package queue

import (
	"context"
	"fmt"

	"github.com/phambaophuc/logo-compositor/internal/models"
	"github.com/phambaophuc/logo-compositor/internal/services/combiner"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

type Combiner interface {
	Combine(ctx context.Context, req *models.CombineRequest) (*combiner.Result, error)
}

type JobStore interface {
	SaveJob(ctx context.Context, job *models.CombineJob) error
}

// consumer is the part of an AMQP channel a worker consumes from.
type consumer interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type QueueService struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	openChannel func() (consumer, error)
	logger    *zap.Logger
	queueName string
	combiner  Combiner
	jobs      JobStore
}

func NewQueueService(
	rabbitmqURL string,
	queueName string,
	combiner Combiner,
	jobs JobStore,
	logger *zap.Logger,
) (*QueueService, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Declare queue
	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &QueueService{
		conn:    conn,
		channel: channel,
		openChannel: func() (consumer, error) {
			ch, err := conn.Channel()
			if err != nil {
				return nil, err
			}
			return ch, nil
		},
		logger:    logger,
		queueName: queueName,
		combiner:  combiner,
		jobs:      jobs,
	}, nil
}

// Close closes the queue connection
func (q *QueueService) Close() error {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
	return nil
}
