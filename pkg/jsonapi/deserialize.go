package jsonapi

import (
	"context"
	"log/slog"

	"github.com/diwise/jsonapi/pkg/jsonapi/index"
	"github.com/diwise/jsonapi/pkg/jsonapi/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Deserializer turns normalized documents into denormalized trees. The shape of the
// result follows the shape of the document's primary data: absent, one node or a
// sequence of nodes of the same length and order.
type Deserializer interface {
	Deserialize(ctx context.Context, doc Document) (types.Multiple[*Node], error)
}

const (
	TraceAttributeIncludedCount string = "jsonapi-included-count"
	TraceAttributePrimaryCount  string = "jsonapi-primary-count"
)

var tracer = otel.Tracer("jsonapi/deserializer")

type deserializer struct {
	cfg Config
}

func New(cfg Config) (Deserializer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &deserializer{cfg: cfg}, nil
}

// Deserialize denormalizes doc using the default configuration
func Deserialize(ctx context.Context, doc Document) (types.Multiple[*Node], error) {
	d := &deserializer{cfg: DefaultConfig()}
	return d.Deserialize(ctx, doc)
}

func (d *deserializer) Deserialize(ctx context.Context, doc Document) (result types.Multiple[*Node], err error) {
	ctx, span := tracer.Start(ctx, "deserialize",
		trace.WithAttributes(attribute.Int(TraceAttributeIncludedCount, len(doc.Included))),
		trace.WithAttributes(attribute.Int(TraceAttributePrimaryCount, doc.Data.Len())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	logger := logging.GetFromContext(ctx)

	idx := index.Build(doc.Included)
	logger.Debug("indexed included resources", slog.Int("count", idx.Len()), slog.Any("types", idx.Types()))

	r := newResolver(idx, d.cfg, logger)

	result, err = r.denormalize(doc.Data)
	if err != nil {
		logger.Error("failed to deserialize document", "err", err.Error())
		return types.Absent[*Node](), err
	}

	if r.unresolved > 0 || r.cycles > 0 {
		logger.Debug("document deserialized with unresolved relationships",
			slog.Int("unresolved", r.unresolved), slog.Int("cycles", r.cycles))
	}

	return result, nil
}
