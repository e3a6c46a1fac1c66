package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestResourceAttributes(t *testing.T) {
	res, err := Resource(context.Background(), Options{
		Version: "1.2.3",
		Board:   "arduino-uno",
		Input:   "remote",
	})
	if err != nil {
		t.Fatalf("Resource() error: %v", err)
	}

	want := map[attribute.Key]string{
		"service.name":    "ledmemory",
		"service.version": "1.2.3",
		BoardKey:          "arduino-uno",
		InputKey:          "remote",
	}
	set := res.Set()
	for k, v := range want {
		got, ok := set.Value(k)
		if !ok {
			t.Errorf("attribute %s missing", k)
			continue
		}
		if got.AsString() != v {
			t.Errorf("attribute %s = %q, want %q", k, got.AsString(), v)
		}
	}
}

func TestResourceDefaults(t *testing.T) {
	res, err := Resource(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Resource() error: %v", err)
	}

	set := res.Set()
	if v, _ := set.Value("service.version"); v.AsString() != "dev" {
		t.Errorf("service.version = %q, want dev", v.AsString())
	}
	if _, ok := set.Value(BoardKey); ok {
		t.Error("board attribute should be omitted when empty")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "round")
	defer span.End()

	if span.IsRecording() {
		t.Error("no-op span should not record")
	}
}
