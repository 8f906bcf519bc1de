package service

import (
	"context"

	"dncommerce/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order.placed event for async processing
	PublishOrderPlaced(ctx context.Context, event *entity.OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
