package server

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"StarMap/internal/starmap"
)

const instrumentationName = "StarMap/internal/server"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// metrics counts star map activity. Uses the global OTel meter (no-op if not configured).
type metrics struct {
	derivations metric.Int64Counter
	selections  metric.Int64Counter
	navigations metric.Int64Counter
	sessions    metric.Int64UpDownCounter
}

func newMetrics() (*metrics, error) {
	m := meter()
	var (
		out metrics
		err error
	)

	out.derivations, err = m.Int64Counter(
		"starmap.derivations",
		metric.WithDescription("Star map views derived from a progress snapshot"),
	)
	if err != nil {
		return nil, err
	}

	out.selections, err = m.Int64Counter(
		"starmap.selections",
		metric.WithDescription("Mission selection attempts by outcome"),
	)
	if err != nil {
		return nil, err
	}

	out.navigations, err = m.Int64Counter(
		"starmap.navigations",
		metric.WithDescription("Navigation requests forwarded to clients"),
	)
	if err != nil {
		return nil, err
	}

	out.sessions, err = m.Int64UpDownCounter(
		"starmap.sessions.active",
		metric.WithDescription("Open websocket sessions"),
	)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (m *metrics) derived(ctx context.Context, source string) {
	m.derivations.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

func (m *metrics) selected(ctx context.Context, outcome starmap.Outcome) {
	m.selections.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome.String())))
}

func (m *metrics) navigated(ctx context.Context) {
	m.navigations.Add(ctx, 1)
}

func (m *metrics) sessionOpened(ctx context.Context) {
	m.sessions.Add(ctx, 1)
}

func (m *metrics) sessionClosed(ctx context.Context) {
	m.sessions.Add(ctx, -1)
}
