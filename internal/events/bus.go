// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/ludotheca/ludotheca/internal/metrics"
)

// topicPrefix namespaces all event topics on the shared pub/sub.
const topicPrefix = "progress."

// Bus wires a GoChannel pub/sub, a Watermill router and the CQRS event
// bus/processor pair into one in-process event pipeline. Publishing is
// type-safe; handlers receive decoded event structs.
type Bus struct {
	pubsub    *gochannel.GoChannel
	router    *message.Router
	eventBus  *cqrs.EventBus
	processor *cqrs.EventProcessor
	logger    watermill.LoggerAdapter
}

// NewBus builds the event pipeline. Call AddHandlers, then Run.
func NewBus() (*Bus, error) {
	logger := NewLoggerAdapter()

	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, logger)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}

	marshaler := cqrs.JSONMarshaler{
		GenerateName: cqrs.StructName,
	}

	eventBus, err := cqrs.NewEventBusWithConfig(pubsub, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return topicPrefix + params.EventName, nil
		},
		Marshaler: marshaler,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create event bus: %w", err)
	}

	processor, err := cqrs.NewEventProcessorWithConfig(router, cqrs.EventProcessorConfig{
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return topicPrefix + params.EventName, nil
		},
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return pubsub, nil
		},
		Marshaler: marshaler,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create event processor: %w", err)
	}

	return &Bus{
		pubsub:    pubsub,
		router:    router,
		eventBus:  eventBus,
		processor: processor,
		logger:    logger,
	}, nil
}

// AddHandlers registers typed event handlers. Must be called before Run.
func (b *Bus) AddHandlers(handlers ...cqrs.EventHandler) error {
	return b.processor.AddHandlers(handlers...)
}

// Run starts the router and blocks until ctx is canceled or Close is
// called. Handlers receive no events before Run.
func (b *Bus) Run(ctx context.Context) error {
	return b.router.Run(ctx)
}

// Running returns a channel that closes once the router serves handlers.
func (b *Bus) Running() <-chan struct{} {
	return b.router.Running()
}

// Close stops the router and the pub/sub, draining in-flight messages.
func (b *Bus) Close() error {
	if err := b.router.Close(); err != nil {
		return fmt.Errorf("close router: %w", err)
	}
	return b.pubsub.Close()
}

// PublishProgressUpdated emits a single-item mutation event.
func (b *Bus) PublishProgressUpdated(ctx context.Context, ev *ProgressUpdated) error {
	if err := b.eventBus.Publish(ctx, ev); err != nil {
		return fmt.Errorf("publish ProgressUpdated: %w", err)
	}
	metrics.RecordEventPublished("ProgressUpdated")
	return nil
}

// PublishProgressImported emits a bulk-replacement event.
func (b *Bus) PublishProgressImported(ctx context.Context, ev *ProgressImported) error {
	if err := b.eventBus.Publish(ctx, ev); err != nil {
		return fmt.Errorf("publish ProgressImported: %w", err)
	}
	metrics.RecordEventPublished("ProgressImported")
	return nil
}
