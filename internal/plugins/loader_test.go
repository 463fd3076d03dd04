package plugins

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"gocalc/internal/core"
)

type fakeOperation struct {
	value float64
}

func (f fakeOperation) Execute(ctx context.Context, args []string) core.Result {
	return core.Ok(f.value)
}

type fakeProvider struct {
	name string
	cmds map[string]core.Operation
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Commands() map[string]core.Operation { return p.cmds }

type fakeSource struct {
	name  string
	provs []Provider
	err   error
}

func (s *fakeSource) Name() string { return s.name }

func (s *fakeSource) Providers() ([]Provider, error) { return s.provs, s.err }

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLoaderMergesProviders(t *testing.T) {
	log, _ := newTestLogger()
	src := &fakeSource{name: "static", provs: []Provider{
		&fakeProvider{name: "a", cmds: map[string]core.Operation{"power": fakeOperation{value: 1}}},
		&fakeProvider{name: "b", cmds: map[string]core.Operation{"mod": fakeOperation{value: 2}}},
	}}

	l := NewLoader(log, src)
	cmds := l.Commands()
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if _, ok := cmds["power"]; !ok {
		t.Fatalf("power must be merged")
	}
	if _, ok := cmds["mod"]; !ok {
		t.Fatalf("mod must be merged")
	}
}

func TestLoaderLaterProviderOverwrites(t *testing.T) {
	log, _ := newTestLogger()
	src := &fakeSource{name: "static", provs: []Provider{
		&fakeProvider{name: "a", cmds: map[string]core.Operation{"power": fakeOperation{value: 1}}},
		&fakeProvider{name: "b", cmds: map[string]core.Operation{"power": fakeOperation{value: 2}}},
	}}

	l := NewLoader(log, src)
	op := l.Commands()["power"]
	if res := op.Execute(context.Background(), nil); res.Value != 2 {
		t.Fatalf("later provider must overwrite, got %v", res.Value)
	}
}

func TestLoaderMissingSource(t *testing.T) {
	log, buf := newTestLogger()
	src := &fakeSource{name: "plugins", err: fmt.Errorf("plugins: %w", ErrSourceNotFound)}

	l := NewLoader(log, src)
	if len(l.Commands()) != 0 {
		t.Fatalf("missing source must yield no commands")
	}
	if !strings.Contains(buf.String(), "plugin source not found") {
		t.Fatalf("expected warning in log, got: %s", buf.String())
	}
	if strings.Contains(buf.String(), "level=ERROR") {
		t.Fatalf("missing source must not log an error: %s", buf.String())
	}
}

func TestLoaderKeepsPartialResultsOnFailure(t *testing.T) {
	log, buf := newTestLogger()
	src := &fakeSource{
		name:  "shared",
		provs: []Provider{&fakeProvider{name: "ok", cmds: map[string]core.Operation{"power": fakeOperation{}}}},
		err:   errors.New("broken object"),
	}

	l := NewLoader(log, src)
	if _, ok := l.Commands()["power"]; !ok {
		t.Fatalf("commands merged before the failure must be kept")
	}
	if !strings.Contains(buf.String(), "plugin load failed") {
		t.Fatalf("expected error in log, got: %s", buf.String())
	}
}

func TestLoaderMultipleSources(t *testing.T) {
	log, _ := newTestLogger()
	broken := &fakeSource{name: "broken", err: errors.New("boom")}
	good := &fakeSource{name: "good", provs: []Provider{
		&fakeProvider{name: "a", cmds: map[string]core.Operation{"sqrt": fakeOperation{}}},
	}}

	l := NewLoader(log, broken, good)
	if _, ok := l.Commands()["sqrt"]; !ok {
		t.Fatalf("failure of one source must not block the next")
	}
}
