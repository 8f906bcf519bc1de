package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dncommerce/config"
	"dncommerce/internal/domain/constants"
	"dncommerce/internal/domain/entity"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *entity.OrderPlacedEvent {
	return &entity.OrderPlacedEvent{
		Type:       constants.EventTypeOrderPlaced,
		RequestID:  "req-123",
		OrderID:    42,
		CustomerID: 7,
		Total:      "35.00",
		Items:      []entity.LineItem{{ProductID: 1, Quantity: 2}},
		PlacedAt:   time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderPlaced(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	err := publisher.PublishOrderPlaced(context.Background(), newTestEvent())
	require.NoError(t, err)

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, "42", received.Message.Attributes["order_id"])
	assert.Equal(t, constants.EventTypeOrderPlaced, received.Message.Attributes["event_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event entity.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, int64(42), event.OrderID)
	assert.Equal(t, "35.00", event.Total)
}

func TestEventAttributes_CarryTraceContext(t *testing.T) {
	previous := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(previous) })

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0xa, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	attributes := eventAttributes(ctx, newTestEvent())

	assert.Equal(t, constants.EventTypeOrderPlaced, attributes["event_type"])
	assert.Equal(t, "42", attributes["order_id"])
	assert.Equal(t, "req-123", attributes["request_id"])
	assert.Equal(t, "00-0a0102030405060708090a0b0c0d0e0f-0102030405060708-01", attributes["traceparent"])

	plain := eventAttributes(context.Background(), newTestEvent())
	assert.NotContains(t, plain, "traceparent")
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	err := publisher.PublishOrderPlaced(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestKafkaPublisher_PublishOrderPlaced(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "42", string(key))
		assert.Equal(t, "order-events", msg.Topic)

		headers := make(map[string]string, len(msg.Headers))
		for _, header := range msg.Headers {
			headers[string(header.Key)] = string(header.Value)
		}
		assert.Equal(t, "req-123", headers["request_id"])

		return nil
	})

	publisher := newKafkaPublisher(producer, "order-events", newTestLogger())
	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), newTestEvent()))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := newKafkaPublisher(producer, "order-events", newTestLogger())
	err := publisher.PublishOrderPlaced(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "orders"}, wantErr: true},
		{name: "kafka without brokers", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka, TopicID: "orders"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newTestLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
