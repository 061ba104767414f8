package database

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lightbnb/backend/internal/infrastructure/clients/postgres"
	"github.com/lightbnb/backend/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultLimit caps list results when the caller gives no limit.
const DefaultLimit = 10

// Option configures an adapter
type Option func(*adapter)

// WithMetrics records db.query.duration for every statement
func WithMetrics(metrics *observability.Metrics) Option {
	return func(a *adapter) {
		a.metrics = metrics
	}
}

// WithDefaultLimit overrides DefaultLimit. Non-positive values are ignored.
func WithDefaultLimit(limit int) Option {
	return func(a *adapter) {
		if limit > 0 {
			a.defaultLimit = limit
		}
	}
}

// adapter holds what every repository implementation shares: the pool,
// a goqu handle for building statements, and instrumentation.
type adapter struct {
	client       *postgres.Client
	db           *goqu.Database
	metrics      *observability.Metrics
	defaultLimit int
}

func newAdapter(client *postgres.Client, opts []Option) adapter {
	a := adapter{
		client:       client,
		db:           goqu.New("postgres", client.DB()),
		defaultLimit: DefaultLimit,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func (a *adapter) limitOrDefault(limit int) uint {
	if limit <= 0 {
		return uint(a.defaultLimit)
	}
	return uint(limit)
}

// begin opens a span for one statement. The returned func must be deferred
// with a pointer to the method's named error result.
func (a *adapter) begin(ctx context.Context, operation, table string) (context.Context, func(*error)) {
	ctx, span := observability.StartSpan(ctx, operation,
		attribute.String("db.system", "postgresql"),
		attribute.String("db.sql.table", table),
	)
	start := time.Now()

	return ctx, func(errp *error) {
		var err error
		if errp != nil {
			err = *errp
		}
		observability.RecordError(span, err)
		a.metrics.RecordDBMetric(ctx, operation, time.Since(start), err)
		span.End()
	}
}
