package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-zettel/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := map[string]any{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

type recordingProvider struct {
	requested []string
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return &recordingLogger{}
}

func TestModuleLoggerDefaultsToRootNamespace(t *testing.T) {
	provider := &recordingProvider{}

	logger := ModuleLogger(provider, "")
	if len(provider.requested) != 1 || provider.requested[0] != "notes" {
		t.Fatalf("expected root namespace requested, got %v", provider.requested)
	}

	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected fields-capable logger, got %T", logger)
	}
	if recorded.fields["module"] != "notes" {
		t.Errorf("expected module field attached, got %v", recorded.fields)
	}
}

func TestModuleLoggerNamespaces(t *testing.T) {
	provider := &recordingProvider{}

	ParserLogger(provider)
	StoreLogger(provider)
	RenderLogger(provider)
	HTTPLogger(provider)

	want := []string{"notes.parser", "notes.store", "notes.render", "notes.http"}
	if len(provider.requested) != len(want) {
		t.Fatalf("expected %d namespaces, got %v", len(want), provider.requested)
	}
	for i, name := range want {
		if provider.requested[i] != name {
			t.Errorf("expected namespace %q, got %q", name, provider.requested[i])
		}
	}
}

func TestModuleLoggerNilProvider(t *testing.T) {
	logger := ModuleLogger(nil, "notes.store")
	if logger == nil {
		t.Fatalf("expected a usable no-op logger")
	}
	logger.Info("does not panic")
}

func TestWithNoteContext(t *testing.T) {
	base := &recordingLogger{}

	logger := WithNoteContext(base, " notes/a.md ", "a", "")
	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected fields-capable logger, got %T", logger)
	}
	if recorded.fields["note_path"] != "notes/a.md" || recorded.fields["note_id"] != "a" {
		t.Errorf("unexpected fields %v", recorded.fields)
	}
	if _, ok := recorded.fields["reason"]; ok {
		t.Errorf("empty reason should be omitted, got %v", recorded.fields)
	}
}

func TestContextFieldsMerge(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "one"})
	ctx = ContextWithFields(ctx, map[string]any{"note_id": "a"})

	fields := ContextFields(ctx)
	if fields["request_id"] != "one" || fields["note_id"] != "a" {
		t.Errorf("expected merged fields, got %v", fields)
	}

	fields["request_id"] = "mutated"
	if again := ContextFields(ctx); again["request_id"] != "one" {
		t.Errorf("context fields should be copied out, got %v", again)
	}
}
