package safe

import (
	"errors"
	"testing"
)

func TestValidateGolden(t *testing.T) {
	if err := ValidatePair(goldenGeneral0, goldenCardiac0); err != nil {
		t.Fatalf("ValidatePair() error = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g, c *Set)
	}{
		{"general tau1 high", func(g, _ *Set) { g.Tau1[0] = 0.002 }},
		{"general stim limit low", func(g, _ *Set) { g.StimLimit[2] = 19 }},
		{"general weights", func(g, _ *Set) { g.A3[1] += 1e-6 }},
		{"cardiac gscale", func(_, c *Set) { c.GScale[1] = 0.36 }},
		{"cardiac tau3", func(_, c *Set) { c.Tau3[0] = 0.0011 }},
		{"cardiac a3", func(_, c *Set) { c.A3[2] = 0.1 }},
		{"coupling", func(_, c *Set) { c.A2[0] = 1 - c.A1[0] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, c := goldenGeneral0, goldenCardiac0
			tt.mutate(&g, &c)
			if err := ValidatePair(g, c); !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("ValidatePair() error = %v, want ErrOutOfRange", err)
			}
		})
	}
}
