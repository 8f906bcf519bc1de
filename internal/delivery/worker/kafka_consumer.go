package worker

import (
	"context"
	"log/slog"
	"time"

	"dncommerce/config"
	"dncommerce/internal/delivery"
	deliverycontext "dncommerce/internal/delivery/context"
	"dncommerce/internal/delivery/worker/handler"
	"dncommerce/internal/domain/constants"
	"dncommerce/internal/domain/lifecycle"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const (
	consumerTracerName = "dncommerce/worker"
	consumeRetryDelay  = 2 * time.Second
)

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.OrderEventProcessor
}

// kafkaConsumer reads order events from the order topic when the kafka provider is configured.
type kafkaConsumer struct {
	cfg       *config.PubSubConfig
	logger    *slog.Logger
	processor *handler.OrderEventProcessor
	stop      chan struct{}
	done      chan struct{}
}

// NewKafkaConsumer creates the consumer delivery. With any other provider Serve returns at once.
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	consumer := &kafkaConsumer{
		cfg:       params.Cfg.PubSub,
		logger:    params.Logger,
		processor: params.Processor,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	if consumer.enabled() {
		if len(consumer.cfg.Brokers) == 0 || consumer.cfg.TopicID == "" {
			return nil, errors.New("brokers and topic ID are required for kafka provider")
		}

		params.Lc.Append(fx.Hook{
			OnStop: consumer.shutdown,
		})
	}

	return consumer, nil
}

func (k *kafkaConsumer) enabled() bool {
	return k.cfg != nil && k.cfg.Provider == constants.PubSubProviderKafka
}

func newConsumerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Consumer.Return.Errors = true
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return cfg
}

// Serve joins the consumer group and consumes until shutdown.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	if !k.enabled() {
		k.logger.Info("Kafka consumer disabled for this provider")

		return nil
	}
	defer close(k.done)

	group, err := sarama.NewConsumerGroup(k.cfg.Brokers, k.cfg.ConsumerGroup, newConsumerConfig())
	if err != nil {
		return errors.Wrap(err, "failed to create kafka consumer group")
	}
	defer group.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-k.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		for err := range group.Errors() {
			k.logger.Error("[Kafka] Consumer group error", slog.Any("error", err))
		}
	}()

	k.logger.Info("Starting Kafka consumer",
		slog.Any("brokers", k.cfg.Brokers),
		slog.String("topic", k.cfg.TopicID),
		slog.String("group", k.cfg.ConsumerGroup),
	)

	claimHandler := &orderClaimHandler{processor: k.processor, logger: k.logger}
	for {
		if err := group.Consume(ctx, []string{k.cfg.TopicID}, claimHandler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			k.logger.Error("[Kafka] Consume session ended", slog.Any("error", err))
		}

		if ctx.Err() != nil {
			return nil
		}

		// A failed session redelivers from the last committed offset
		select {
		case <-time.After(consumeRetryDelay):
		case <-ctx.Done():
			return nil
		}
	}
}

func (k *kafkaConsumer) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	k.logger.Info("Shutting down Kafka consumer")
	close(k.stop)

	select {
	case <-k.done:
		return nil
	case <-shutdownCtx.Done():
		return errors.WithStack(shutdownCtx.Err())
	}
}

// orderClaimHandler implements sarama.ConsumerGroupHandler for order events.
type orderClaimHandler struct {
	processor *handler.OrderEventProcessor
	logger    *slog.Logger
}

func (h *orderClaimHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *orderClaimHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim marks processed and malformed messages. A store failure ends the session
// without marking, so the message is consumed again.
func (h *orderClaimHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			if err := h.handleMessage(session.Context(), msg); err != nil {
				return err
			}
			session.MarkMessage(msg, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *orderClaimHandler) handleMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	carrier := propagation.MapCarrier{}
	for _, header := range msg.Headers {
		if header != nil {
			carrier[string(header.Key)] = string(header.Value)
		}
	}

	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)
	ctx, span := otel.Tracer(consumerTracerName).Start(ctx, "order.consume",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.destination.name", msg.Topic),
			attribute.Int("messaging.kafka.partition", int(msg.Partition)),
			attribute.Int64("messaging.kafka.offset", msg.Offset),
		),
	)
	defer span.End()

	requestID := deliverycontext.NormalizeRequestID(carrier[deliverycontext.AttrRequestID])
	ctx, logger := deliverycontext.Bind(ctx, h.logger, requestID,
		slog.Int64("offset", msg.Offset),
		slog.Int("partition", int(msg.Partition)),
	)

	event, err := h.processor.Decode(msg.Value)
	if err == nil {
		err = h.processor.Process(ctx, event, logger)
	}
	if err == nil {
		return nil
	}

	if handler.IsMalformed(err) {
		logger.Error("[Kafka] Dropping malformed order event", slog.Any("error", err))

		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, "order event processing failed")
	logger.Error("[Kafka] Failed to process order event", slog.Any("error", err))

	return err
}
