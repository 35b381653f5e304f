package sim

import (
	"math"
	"testing"
)

func TestRunDefaultsSettle(t *testing.T) {
	res, err := Run(DefaultConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !res.Settled {
		t.Fatal("crate never settled within the default duration")
	}
	if res.SettleTime <= 0 || res.SettleTime > 8 {
		t.Errorf("SettleTime = %v, want within (0, 8]", res.SettleTime)
	}
	// Floor top at 0.5 plus crate half-height 0.5.
	if math.Abs(float64(res.RestHeight)-1.0) > 0.02 {
		t.Errorf("RestHeight = %v, want about 1.0", res.RestHeight)
	}
	if res.Bounces < 2 || res.Bounces > 200 {
		t.Errorf("Bounces = %d, want a plausible count", res.Bounces)
	}
	if res.Steps != 600 || len(res.Heights) != 600 {
		t.Errorf("Steps = %d, Heights = %d, want 600 samples for 10s at 1/60",
			res.Steps, len(res.Heights))
	}
}

func TestRunNeverTunnels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DropHeight = 8
	cfg.Restitution = 0.8

	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, h := range res.Heights {
		if h < 1.0-1e-3 {
			t.Fatalf("crate dipped below rest height at step %d: %v", i, h)
		}
	}
}

func TestRunDeadCrateStops(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Restitution = 0

	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Settled {
		t.Fatal("zero-restitution crate did not settle")
	}
	if res.Bounces != 1 {
		t.Errorf("Bounces = %d, want 1 contact", res.Bounces)
	}
}

func TestRunRejectsBadStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt = 0
	if _, err := Run(cfg); err == nil {
		t.Error("zero dt accepted")
	}

	cfg = DefaultConfig()
	cfg.Duration = -1
	if _, err := Run(cfg); err == nil {
		t.Error("negative duration accepted")
	}
}
