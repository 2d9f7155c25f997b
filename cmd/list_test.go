package cmd

import "testing"

func TestListCommand_Flags(t *testing.T) {
	flags := listCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"windows", "bool"},
		{"workspaces", "bool"},
		{"app-id", "string"},
		{"window-matching", "string"},
		{"workspace", "string"},
		{"select-focused", "bool"},
		{"format", "string"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestServeCommand_Flags(t *testing.T) {
	if f := serveCmd.Flags().Lookup("transport"); f == nil || f.DefValue != "stdio" {
		t.Error("serve should default to the stdio transport")
	}
	if f := serveCmd.Flags().Lookup("port"); f == nil {
		t.Error("serve should have a port flag")
	}
}
