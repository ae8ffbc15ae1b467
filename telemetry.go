package crypter

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/datasetlab/crypter"

var (
	encryptOps   metric.Int64Counter
	decryptOps   metric.Int64Counter
	handshakeOps metric.Int64Counter
)

func init() {
	meter := otel.Meter(instrumentationName)

	var err error
	if encryptOps, err = meter.Int64Counter("crypter.encrypt.ops",
		metric.WithDescription("Encrypt operations, partitioned by outcome."),
	); err != nil {
		otel.Handle(err)
	}
	if decryptOps, err = meter.Int64Counter("crypter.decrypt.ops",
		metric.WithDescription("Decrypt operations, partitioned by outcome."),
	); err != nil {
		otel.Handle(err)
	}
	if handshakeOps, err = meter.Int64Counter("crypter.handshake.ops",
		metric.WithDescription("Handshake probes, partitioned by outcome."),
	); err != nil {
		otel.Handle(err)
	}
}

// recordOp counts one operation against the given counter, labelled with
// its outcome.
func recordOp(counter metric.Int64Counter, err error) {
	if counter == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	counter.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("outcome", outcome)))
}
