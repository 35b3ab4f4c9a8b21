package services

import (
	"context"

	"salestracker/events"
	"salestracker/services/logger"
)

// CacheInvalidator drops derived data after a write.
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// writeHooks runs after a committed write: cached aggregations are dropped
// and the domain event is published. Neither step can fail the write.
type writeHooks struct {
	events      events.Publisher
	invalidator CacheInvalidator
	logger      logger.Logger
}

func newWriteHooks(pub events.Publisher, inv CacheInvalidator, log logger.Logger) writeHooks {
	if pub == nil {
		pub = events.Noop{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return writeHooks{events: pub, invalidator: inv, logger: log}
}

func (h writeHooks) committed(ctx context.Context, eventType string, payload any) {
	if h.invalidator != nil {
		h.invalidator.InvalidateCache(ctx)
	}
	if eventType == "" {
		return
	}
	if err := h.events.Publish(ctx, events.New(eventType, payload)); err != nil {
		h.logger.Warn("event publish failed", "type", eventType, "error", err)
	}
}
