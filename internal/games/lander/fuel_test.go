package lander

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
)

func TestTankBurn(t *testing.T) {
	cfg := config.FuelConfig{Steps: 50, WarningPercent: 20}

	tests := []struct {
		name    string
		seconds int
		burns   []float64
		want    int
	}{
		{"nothing", 10, nil, 50},
		{"partial step", 10, []float64{150}, 50},
		{"accumulates", 10, []float64{150, 150}, 49},
		{"several steps", 10, []float64{1100}, 45},
		{"never negative", 10, []float64{20000, 5000}, 0},
		{"slow tank", 30, []float64{1300}, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tank := NewTank(cfg, tt.seconds)
			for _, ms := range tt.burns {
				tank.Burn(ms)
			}
			if got := tank.Left(); got != tt.want {
				t.Errorf("Left() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTankGauge(t *testing.T) {
	tank := NewTank(config.FuelConfig{Steps: 50, WarningPercent: 20}, 10)
	if tank.Low() || tank.Empty() {
		t.Fatal("full tank reported low")
	}
	if tank.Fraction() != 1 {
		t.Errorf("Fraction() = %v, want 1", tank.Fraction())
	}

	tank.left = 10
	if !tank.Low() {
		t.Error("10 of 50 should be low")
	}

	tank.Burn(1e6)
	if !tank.Empty() || tank.Fraction() != 0 {
		t.Error("expected an empty tank")
	}

	tank.Refuel()
	if tank.Left() != tank.Steps() {
		t.Errorf("Left() = %d after refuel, want %d", tank.Left(), tank.Steps())
	}
}

func TestSlowBurn(t *testing.T) {
	tank := NewTank(config.FuelConfig{Steps: 50}, 10)
	tank.SlowBurn(30)
	tank.Burn(1300)
	if got := tank.Left(); got != 48 {
		t.Errorf("Left() = %d, want 48", got)
	}
}
