package internal

import (
	"testing"

	"go.uber.org/fx"
)

// Validates the dependency graph without instantiating anything, so a
// provider drifting out of sync with its consumers fails here instead of
// at startup.
func TestAppGraph(t *testing.T) {
	if err := fx.ValidateApp(options()...); err != nil {
		t.Fatalf("application graph is invalid: %v", err)
	}
}
