package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 30 * time.Second

// RecordPublisher receives rendered JSON records.
type RecordPublisher interface {
	Publish(ctx context.Context, queue string, data []byte) error
}

// AMPQClient publishes records to RabbitMQ with publisher confirms.
type AMPQClient struct {
	m             sync.Mutex
	connection    *amqp.Connection
	channel       *amqp.Channel
	notifyConfirm chan amqp.Confirmation
	isReady       bool
}

// NewMsgQueueClient connects to addr and declares the given durable queues.
func NewMsgQueueClient(addr string, queues ...string) (*AMPQClient, error) {
	logf := LoggingFormat{Type: LogType.Queue, Function: "NewMsgQueueClient"}

	conn, err := amqp.Dial(addr)
	if err != nil {
		logf.Level = logrus.ErrorLevel
		logf.Message = "failed to connect"
		logf.Error = err
		return nil, logf.ToError()
	}

	client := &AMPQClient{connection: conn}
	if err := client.init(queues); err != nil {
		_ = conn.Close()
		logf.Level = logrus.ErrorLevel
		logf.Message = "failed to initialize channel"
		logf.Error = err
		return nil, logf.ToError()
	}

	logf.Level = logrus.InfoLevel
	logf.Message = "connected"
	logf.AddField("queues", queues)
	logf.Print()
	return client, nil
}

// init opens a confirming channel and declares all queues.
func (client *AMPQClient) init(queues []string) error {
	ch, err := client.connection.Channel()
	if err != nil {
		return err
	}

	if err := ch.Confirm(false); err != nil {
		return err
	}

	for _, queue := range queues {
		_, err := ch.QueueDeclare(
			queue,
			true,  // Durable
			false, // Delete when unused
			false, // Exclusive
			false, // No-wait
			nil,   // Arguments
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue '%s': %w", queue, err)
		}
	}

	client.channel = ch
	client.notifyConfirm = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	client.isReady = true
	return nil
}

// Publish sends data to queue and waits for the broker's confirmation.
func (client *AMPQClient) Publish(ctx context.Context, queue string, data []byte) error {
	client.m.Lock()
	defer client.m.Unlock()

	if !client.isReady {
		return fmt.Errorf("not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := client.channel.PublishWithContext(
		ctx,
		"",    // Exchange
		queue, // Routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         data,
		},
	)
	if err != nil {
		return err
	}

	select {
	case confirm, ok := <-client.notifyConfirm:
		if !ok {
			client.isReady = false
			return fmt.Errorf("channel closed before confirmation")
		}
		if !confirm.Ack {
			return fmt.Errorf("publish to %s not acknowledged", queue)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for confirmation: %w", ctx.Err())
	}
}

// Close shuts down the channel and connection.
func (client *AMPQClient) Close() error {
	client.m.Lock()
	defer client.m.Unlock()

	if !client.isReady {
		return fmt.Errorf("connection already closed")
	}
	client.isReady = false

	if err := client.channel.Close(); err != nil {
		return err
	}
	return client.connection.Close()
}
