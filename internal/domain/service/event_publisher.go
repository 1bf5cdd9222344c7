package service

import (
	"context"
)

// BuilderImportedEvent is emitted once per profile created by a bulk import batch.
type BuilderImportedEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	BuilderID   string `json:"builder_id"`
	Slug        string `json:"slug"`
	CompanyName string `json:"company_name"`
	Country     string `json:"country"`
	CityCount   int    `json:"city_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBuilderImported publishes a builder-imported event for async consumers
	// (directory reindexing, notification fan-out).
	PublishBuilderImported(ctx context.Context, event *BuilderImportedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
