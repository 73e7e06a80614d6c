package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "tsscaffold" {
		t.Errorf("CLIName() = %q, want %q", got, "tsscaffold")
	}
	if got := HomeDir(); got != ".tsscaffold" {
		t.Errorf("HomeDir() = %q, want %q", got, ".tsscaffold")
	}
	if got := EnvPrefix(); got != "TSSCAFFOLD" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "TSSCAFFOLD")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("template_dir"); got != "TSSCAFFOLD_TEMPLATE_DIR" {
		t.Errorf("EnvVar() = %q, want %q", got, "TSSCAFFOLD_TEMPLATE_DIR")
	}
}
