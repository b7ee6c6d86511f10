// Package metrics collects run statistics in a Prometheus registry and writes
// them in the text exposition format, for node_exporter's textfile collector.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ginjaninja78/daily-sales-summary/internal/summary"
	"github.com/ginjaninja78/daily-sales-summary/internal/types"
)

type Registry struct {
	reg *prometheus.Registry

	InvoicesRead    prometheus.Counter
	PriceMismatches prometheus.Counter
	Orders          *prometheus.GaugeVec
	ItemQuantity    *prometheus.GaugeVec
	RunDurationSec  prometheus.Gauge
	LastRunUnixSec  prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	invoices := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "salesummary_invoices_read_total",
		Help: "Invoice files read in the last run.",
	})
	mismatches := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "salesummary_price_mismatch_total",
		Help: "Invoices whose TotalPrice differs from Quantity * PricePerItem.",
	})
	orders := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "salesummary_orders",
		Help: "Orders per kind in the last run.",
	}, []string{"kind"})
	quantity := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "salesummary_item_quantity",
		Help: "Summed quantity per kind and menu item in the last run.",
	}, []string{"kind", "item"})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "salesummary_run_duration_seconds",
		Help: "Wall time of the last run.",
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "salesummary_last_run_timestamp_seconds",
		Help: "Unix time the last run finished.",
	})

	r.MustRegister(invoices, mismatches, orders, quantity, duration, lastRun)
	return &Registry{
		reg:             r,
		InvoicesRead:    invoices,
		PriceMismatches: mismatches,
		Orders:          orders,
		ItemQuantity:    quantity,
		RunDurationSec:  duration,
		LastRunUnixSec:  lastRun,
	}
}

// ObserveCounts sets the per-kind and per-item gauges from counts. Every kind
// and item is set, so zero values are exported too.
func (r *Registry) ObserveCounts(counts summary.Counts) {
	for _, kind := range types.Kinds {
		r.Orders.WithLabelValues(kind.String()).Set(float64(counts.Orders(kind)))
		for _, item := range types.Menu {
			r.ItemQuantity.WithLabelValues(kind.String(), item.String()).Set(float64(counts.Quantity(kind, item)))
		}
	}
}

// ObserveRun records the duration and completion time of a run.
func (r *Registry) ObserveRun(duration time.Duration, finished time.Time) {
	r.RunDurationSec.Set(duration.Seconds())
	r.LastRunUnixSec.Set(float64(finished.Unix()))
}

// WriteTextfile writes all metrics to path, creating parent directories.
// The file is written atomically by the Prometheus client.
func (r *Registry) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
