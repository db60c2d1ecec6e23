package dialectcmd

import (
	"testing"

	"github.com/goliatone/go-tagdown/internal/dialect"
)

type recordingRegistry struct {
	registered []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.registered = append(r.registered, handler)
	return nil
}

func TestRegisterDialectCommandsRequiresService(t *testing.T) {
	if _, err := RegisterDialectCommands(nil, nil, nil, FeatureGates{}); err == nil {
		t.Fatal("expected error when service missing")
	}
}

func TestRegisterDialectCommandsRegistersHandlers(t *testing.T) {
	reg := &recordingRegistry{}

	set, err := RegisterDialectCommands(reg, dialect.NewEngine(), nil, FeatureGates{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if set == nil || set.Convert == nil || set.Beautify == nil {
		t.Fatal("expected both handlers in set")
	}
	if len(reg.registered) != 2 {
		t.Fatalf("expected two registered handlers, got %d", len(reg.registered))
	}
}

func TestRegisterDialectCommandsNilRegistry(t *testing.T) {
	set, err := RegisterDialectCommands(nil, dialect.NewEngine(), nil, FeatureGates{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if set == nil || set.Convert == nil || set.Beautify == nil {
		t.Fatal("expected handler set without registry")
	}
}
