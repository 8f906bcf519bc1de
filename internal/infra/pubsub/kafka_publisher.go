package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"dncommerce/internal/domain/entity"
	"dncommerce/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// kafkaPublisher implements EventPublisher with a synchronous Kafka producer.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher creates a publisher that waits for all in-sync replicas to acknowledge.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, newProducerConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	return newKafkaPublisher(producer, topic, logger), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

func newProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	return cfg
}

// PublishOrderPlaced sends the event keyed by order ID, carrying the trace context in headers.
func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, event *entity.OrderPlacedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	carrier := eventAttributes(ctx, event)
	headers := make([]sarama.RecordHeader, 0, len(carrier))
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value:   sarama.ByteEncoder(data),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrap(err, "failed to send kafka message")
	}

	p.logger.Info("[Kafka] Event published successfully",
		slog.Int64("order_id", event.OrderID),
		slog.String("topic", p.topic),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

// Close flushes and closes the producer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.producer.Close())
}
