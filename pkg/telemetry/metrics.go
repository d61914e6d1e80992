// Package telemetry records gameplay counters through OpenTelemetry.
//
// Instruments come from the global meter provider, which is a no-op unless
// the host process installs an SDK.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gonewx/cardace/pkg/telemetry"

// Reap reasons.
const (
	ReapDistance = "distance"
	ReapFloor    = "floor"
	ReapExpired  = "expired"
)

// Metrics holds the gameplay instruments.
type Metrics struct {
	shots        metric.Int64Counter
	hits         metric.Int64Counter
	cardsSpawned metric.Int64Counter
	reaped       metric.Int64Counter
	runs         metric.Int64Counter
	runDuration  metric.Float64Histogram
}

// New creates the instruments on the global meter.
func New() (*Metrics, error) {
	return NewWithMeter(otel.Meter(instrumentationName))
}

// NewWithMeter creates the instruments on m.
func NewWithMeter(m metric.Meter) (*Metrics, error) {
	var (
		mt  Metrics
		err error
	)

	mt.shots, err = m.Int64Counter(
		"cardace.shots",
		metric.WithDescription("Fire requests, by admission result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	mt.hits, err = m.Int64Counter(
		"cardace.hits",
		metric.WithDescription("Resolved projectile hits on cards, by result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}

	mt.cardsSpawned, err = m.Int64Counter(
		"cardace.cards.spawned",
		metric.WithDescription("Cards drawn from the deck onto the field"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cards counter: %w", err)
	}

	mt.reaped, err = m.Int64Counter(
		"cardace.entities.reaped",
		metric.WithDescription("Entities removed by the reaper, by reason"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reaped counter: %w", err)
	}

	mt.runs, err = m.Int64Counter(
		"cardace.runs.completed",
		metric.WithDescription("Runs that captured every rank"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	mt.runDuration, err = m.Float64Histogram(
		"cardace.runs.duration",
		metric.WithDescription("Elapsed time of completed runs"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating run duration histogram: %w", err)
	}

	return &mt, nil
}

// Shot records a fire request.
func (m *Metrics) Shot(admitted bool) {
	if m == nil {
		return
	}
	m.shots.Add(context.Background(), 1, metric.WithAttributes(attribute.Bool("admitted", admitted)))
}

// Hit records a resolved hit; result is "success" or "failure".
func (m *Metrics) Hit(result string, rollback bool) {
	if m == nil {
		return
	}
	m.hits.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("result", result),
		attribute.Bool("rollback", rollback),
	))
}

// CardSpawned records a card entering the field.
func (m *Metrics) CardSpawned() {
	if m == nil {
		return
	}
	m.cardsSpawned.Add(context.Background(), 1)
}

// Reaped records entities removed by the reaper.
func (m *Metrics) Reaped(reason string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.reaped.Add(context.Background(), int64(n), metric.WithAttributes(attribute.String("reason", reason)))
}

// RunCompleted records a finished run and its time.
func (m *Metrics) RunCompleted(seconds float64, best bool) {
	if m == nil {
		return
	}
	m.runs.Add(context.Background(), 1, metric.WithAttributes(attribute.Bool("best", best)))
	m.runDuration.Record(context.Background(), seconds)
}
