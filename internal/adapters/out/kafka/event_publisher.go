// Package kafka provides the Kafka-based implementation of the event
// publisher port. Domain events drained after a committed transaction are
// serialized as JSON envelopes and written to a single topic, keyed by
// aggregate so one aggregate's events stay ordered within a partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"
	"unicode"

	"shipping/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// eventEnvelope is the wire structure for one published domain event.
type eventEnvelope struct {
	Name        string         `json:"name"`
	AggregateID string         `json:"aggregate_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// payloadOf builds the envelope payload from the event's exported accessors.
// EventName, AggregateID and OccurredAt are envelope fields already; every
// other zero-argument single-result accessor contributes one snake_cased
// entry, so new event fields reach the wire without adapter changes.
func payloadOf(event kernel.DomainEvent) map[string]any {
	value := reflect.ValueOf(event)
	kind := value.Type()

	payload := make(map[string]any)
	for i := 0; i < kind.NumMethod(); i++ {
		method := kind.Method(i)
		if method.Type.NumIn() != 1 || method.Type.NumOut() != 1 {
			continue
		}
		switch method.Name {
		case "EventName", "AggregateID", "OccurredAt", "Validate":
			continue
		}
		payload[snakeCase(method.Name)] = wireValue(value.Method(i).Call(nil)[0].Interface())
	}

	if len(payload) == 0 {
		return nil
	}
	return payload
}

// wireValue flattens domain value objects to wire-friendly primitives.
// time.Time keeps its JSON encoding; everything else with a String method
// (identifiers, enums, money, coordinates) goes out as its string form.
func wireValue(v any) any {
	switch value := v.(type) {
	case time.Time:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return value
	}
}

func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			boundary := i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && !unicode.IsUpper(runes[i+1])))
			if boundary {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EventPublisher ships drained domain events to a Kafka topic.
type EventPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewEventPublisher creates a publisher writing to the given topic on the
// given brokers.
func NewEventPublisher(brokers []string, topic string, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		logger: logger.With("component", "kafka_event_publisher"),
	}
}

// Publish sends the events in order. An empty slice is a no-op.
func (p *EventPublisher) Publish(ctx context.Context, events []kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(eventEnvelope{
			Name:        event.EventName(),
			AggregateID: event.AggregateID().String(),
			OccurredAt:  event.OccurredAt(),
			Payload:     payloadOf(event),
		})
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", event.EventName(), err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(event.AggregateID().String()),
			Value: value,
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}

	p.logger.DebugContext(ctx, "Published domain events", "count", len(messages))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
