package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dncommerce/config"
	"dncommerce/internal/domain/constants"
	"dncommerce/internal/domain/entity"
	mockUC "dncommerce/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockStockAlertUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stockAlertUC := mockUC.NewMockStockAlertUsecase(t)
	processor := NewOrderEventProcessor(OrderEventProcessorParams{StockAlertUC: stockAlertUC, Logger: logger})

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger, Processor: processor}), stockAlertUC
}

func developConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/order-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event *entity.OrderPlacedEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(data)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.HandlePush(c)

	return rec
}

func placedEvent() *entity.OrderPlacedEvent {
	return &entity.OrderPlacedEvent{
		Type:       constants.EventTypeOrderPlaced,
		OrderID:    42,
		CustomerID: 7,
		Total:      "35.00",
		Items:      []entity.LineItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 2}},
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("order event raises alerts", func(t *testing.T) {
		h, stockAlertUC := newTestPushHandler(t, developConfig())

		stockAlertUC.EXPECT().
			HandleOrderPlaced(mock.Anything, mock.MatchedBy(func(event *entity.OrderPlacedEvent) bool {
				return event.OrderID == 42 && len(event.Items) == 2
			})).
			Return([]*entity.InventoryRecord{{ProductID: 1, AvailableQuantity: 3, MinimumQuantity: 5}}, nil).
			Once()

		rec := servePush(h, pushBody(t, encodeEvent(t, placedEvent()), map[string]string{"request_id": "req-1"}), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store failure is retried", func(t *testing.T) {
		h, stockAlertUC := newTestPushHandler(t, developConfig())

		stockAlertUC.EXPECT().HandleOrderPlaced(mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused")).
			Once()

		rec := servePush(h, pushBody(t, encodeEvent(t, placedEvent()), nil), nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("other event types are acknowledged", func(t *testing.T) {
		h, _ := newTestPushHandler(t, developConfig())

		event := placedEvent()
		event.Type = "order.shipped"

		rec := servePush(h, pushBody(t, encodeEvent(t, event), nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	malformed := []struct {
		name string
		body func(t *testing.T) string
	}{
		{"envelope is not json", func(*testing.T) string { return `{"message":` }},
		{"data is not base64", func(t *testing.T) string { return pushBody(t, "%%%", nil) }},
		{"payload is not json", func(t *testing.T) string {
			return pushBody(t, base64.StdEncoding.EncodeToString([]byte("not json")), nil)
		}},
		{"event without items", func(t *testing.T) string {
			event := placedEvent()
			event.Items = nil

			return pushBody(t, encodeEvent(t, event), nil)
		}},
	}

	for _, tt := range malformed {
		t.Run(tt.name+" is acknowledged", func(t *testing.T) {
			h, _ := newTestPushHandler(t, developConfig())

			rec := servePush(h, tt.body(t), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_RequiresTokenForGooglePush(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	t.Run("missing header", func(t *testing.T) {
		rec := servePush(h, pushBody(t, encodeEvent(t, placedEvent()), nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec := servePush(h, pushBody(t, encodeEvent(t, placedEvent()), nil), http.Header{"Authorization": {"Basic abc"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, developConfig())
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", h.extractRequestID(req.Context(), &msg, &entity.OrderPlacedEvent{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(req.Context(), &msg, &entity.OrderPlacedEvent{RequestID: "from-event"}))

	assert.NotEmpty(t, h.extractRequestID(req.Context(), &msg, &entity.OrderPlacedEvent{}))
}
