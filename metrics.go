package keymanager

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instruments are registered against the global meter provider; with the
// default no-op provider every record call is free.
const instrumentationName = "github.com/rbaliyan/keymanager"

var (
	keysCreated        metric.Int64Counter
	primitivesCreated  metric.Int64Counter
	validationFailures metric.Int64Counter
)

func init() {
	meter := otel.Meter(instrumentationName)

	// Errors here only occur for malformed instrument names; the no-op
	// instruments returned alongside keep the counters usable.
	keysCreated, _ = meter.Int64Counter("keymanager.keys_created",
		metric.WithDescription("Number of keys generated by CreateKey."))
	primitivesCreated, _ = meter.Int64Counter("keymanager.primitives_created",
		metric.WithDescription("Number of primitives built by Create."))
	validationFailures, _ = meter.Int64Counter("keymanager.validation_failures",
		metric.WithDescription("Number of key and key-format validation failures."))
}

func (m *Manager[K, F]) observeKeyCreated() {
	keysCreated.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("key_type", m.keyType)))
}

func (m *Manager[K, F]) observePrimitiveCreated(primitive string) {
	primitivesCreated.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String("key_type", m.keyType),
			attribute.String("primitive", primitive)))
}

func (m *Manager[K, F]) observeValidationFailure(kind string) {
	validationFailures.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String("key_type", m.keyType),
			attribute.String("kind", kind)))
}
