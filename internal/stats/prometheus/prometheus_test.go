package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNew_DefaultRegistry(t *testing.T) {
	// Create with nil registry - should use default.
	c := New(nil)
	if c == nil {
		t.Fatal("New(nil) returned nil")
	}
	if c.registry == nil {
		t.Error("registry should not be nil")
	}
}

func TestNew_CustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	if c.registry != reg {
		t.Error("registry should be the custom registry")
	}
}

func TestCollector_IncCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter("test_resolves_total", 5)
	c.IncCounter("test_resolves_total", 3)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := false
	for _, m := range metrics {
		if m.GetName() == "test_resolves_total" {
			found = true
			if len(m.GetMetric()) == 0 {
				t.Error("counter has no metrics")
				break
			}
			val := m.GetMetric()[0].GetCounter().GetValue()
			if val != 8 {
				t.Errorf("counter value = %v, want 8", val)
			}
		}
	}

	if !found {
		t.Error("counter test_resolves_total not found in registry")
	}
}

func TestCollector_SetGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.SetGauge("test_registered_codecs", 42)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := false
	for _, m := range metrics {
		if m.GetName() == "test_registered_codecs" {
			found = true
			if len(m.GetMetric()) == 0 {
				t.Error("gauge has no metrics")
				break
			}
			val := m.GetMetric()[0].GetGauge().GetValue()
			if val != 42 {
				t.Errorf("gauge value = %v, want 42", val)
			}
		}
	}

	if !found {
		t.Error("gauge test_registered_codecs not found in registry")
	}
}

func TestCollector_ReusesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	first := c.getOrCreateCounter("test_counter")
	second := c.getOrCreateCounter("test_counter")
	if first != second {
		t.Error("getOrCreateCounter() returned different instances for the same name")
	}
}
