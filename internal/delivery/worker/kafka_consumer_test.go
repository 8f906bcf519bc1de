package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"dncommerce/config"
	"dncommerce/internal/delivery/worker/handler"
	"dncommerce/internal/domain/constants"
	"dncommerce/internal/domain/entity"
	mockUC "dncommerce/internal/mocks/usecase"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	sarama.ConsumerGroupSession

	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim

	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func newClaim(messages ...*sarama.ConsumerMessage) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(messages))
	for _, msg := range messages {
		ch <- msg
	}
	close(ch)

	return &fakeClaim{messages: ch}
}

func newTestClaimHandler(t *testing.T) (*orderClaimHandler, *mockUC.MockStockAlertUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stockAlertUC := mockUC.NewMockStockAlertUsecase(t)
	processor := handler.NewOrderEventProcessor(handler.OrderEventProcessorParams{
		StockAlertUC: stockAlertUC,
		Logger:       logger,
	})

	return &orderClaimHandler{processor: processor, logger: logger}, stockAlertUC
}

func eventMessage(t *testing.T, offset int64, orderID int64) *sarama.ConsumerMessage {
	t.Helper()

	data, err := json.Marshal(&entity.OrderPlacedEvent{
		Type:    constants.EventTypeOrderPlaced,
		OrderID: orderID,
		Items:   []entity.LineItem{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	return &sarama.ConsumerMessage{
		Topic:   "order-events",
		Offset:  offset,
		Value:   data,
		Headers: []*sarama.RecordHeader{{Key: []byte("request_id"), Value: []byte("req-1")}},
	}
}

func TestOrderClaimHandler_ConsumeClaim(t *testing.T) {
	t.Run("marks processed and malformed messages", func(t *testing.T) {
		h, stockAlertUC := newTestClaimHandler(t)

		stockAlertUC.EXPECT().
			HandleOrderPlaced(mock.Anything, mock.MatchedBy(func(event *entity.OrderPlacedEvent) bool {
				return event.OrderID == 42
			})).
			Return(nil, nil).
			Once()

		session := &fakeSession{ctx: context.Background()}
		claim := newClaim(
			eventMessage(t, 10, 42),
			&sarama.ConsumerMessage{Offset: 11, Value: []byte("not json")},
		)

		require.NoError(t, h.ConsumeClaim(session, claim))
		assert.Equal(t, []int64{10, 11}, session.marked)
	})

	t.Run("store failure stops before marking", func(t *testing.T) {
		h, stockAlertUC := newTestClaimHandler(t)

		stockAlertUC.EXPECT().HandleOrderPlaced(mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused")).
			Once()

		session := &fakeSession{ctx: context.Background()}
		claim := newClaim(eventMessage(t, 10, 42), eventMessage(t, 11, 43))

		require.Error(t, h.ConsumeClaim(session, claim))
		assert.Empty(t, session.marked)
	})
}

func TestNewKafkaConsumer_RequiresBrokers(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka}}

	_, err := NewKafkaConsumer(KafkaConsumerParams{
		Cfg:    cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.Error(t, err)
}

func TestKafkaConsumer_DisabledServeReturns(t *testing.T) {
	consumer, err := NewKafkaConsumer(KafkaConsumerParams{
		Cfg:    &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.NoError(t, consumer.Serve(context.Background()))
}
