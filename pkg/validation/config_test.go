package validation

import (
	"strings"
	"testing"
)

func TestValidateRefinancePrincipal(t *testing.T) {
	tests := []struct {
		name          string
		refiPrincipal float64
		remaining     float64
		expectWarning bool
	}{
		{"Default principal is quiet", 0, 279163.07, false},
		{"Matching principal is quiet", 279163.50, 279163.07, false},
		{"Cash-out warns", 320000, 279163.07, true},
		{"Cash-in warns", 250000, 279163.07, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := ValidateRefinancePrincipal(tt.refiPrincipal, tt.remaining)
			if (warning != "") != tt.expectWarning {
				t.Errorf("ValidateRefinancePrincipal() warning = %q, expected warning: %t", warning, tt.expectWarning)
			}
		})
	}
}

func TestValidateHorizon(t *testing.T) {
	if warning := ValidateHorizon(60, 300, 360); warning != "" {
		t.Errorf("ValidateHorizon() within terms warned: %q", warning)
	}
	if warning := ValidateHorizon(400, 300, 360); warning == "" {
		t.Errorf("ValidateHorizon() past both payoffs expected warning")
	}
	// Past one loan but not the other still contributes savings.
	if warning := ValidateHorizon(330, 300, 360); warning != "" {
		t.Errorf("ValidateHorizon() past one payoff warned: %q", warning)
	}
}

func TestValidateUpfrontCost(t *testing.T) {
	if warning := ValidateUpfrontCost(5000); warning != "" {
		t.Errorf("ValidateUpfrontCost() with real cost warned: %q", warning)
	}
	warning := ValidateUpfrontCost(0)
	if warning == "" {
		t.Fatalf("ValidateUpfrontCost() with zero cost expected warning")
	}
	if !strings.Contains(warning, "break-even is immediate") {
		t.Errorf("ValidateUpfrontCost() warning = %q, expected break-even note", warning)
	}
}

func TestValidateLTV(t *testing.T) {
	if warning := ValidateLTV(400000, 500000); warning != "" {
		t.Errorf("ValidateLTV() healthy loan warned: %q", warning)
	}
	if warning := ValidateLTV(400000, 0); warning != "" {
		t.Errorf("ValidateLTV() without home value warned: %q", warning)
	}
	if warning := ValidateLTV(550000, 500000); warning == "" {
		t.Errorf("ValidateLTV() underwater loan expected warning")
	}
}
