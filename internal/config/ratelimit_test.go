package config

import (
	"testing"
	"time"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()

	if !cfg.Enabled {
		t.Error("rate limiting should default to enabled")
	}
	if cfg.Capacity != 30 {
		t.Errorf("Capacity = %d, want 30", cfg.Capacity)
	}
	if cfg.RefillInterval != time.Second {
		t.Errorf("RefillInterval = %v, want 1s", cfg.RefillInterval)
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "-3")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "0")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")

	cfg := LoadRateLimitConfig()

	if cfg.Capacity < 1 {
		t.Errorf("Capacity = %d, want >= 1", cfg.Capacity)
	}
	if cfg.RefillTokens < 1 {
		t.Errorf("RefillTokens = %d, want >= 1", cfg.RefillTokens)
	}
	// TTL is raised to at least five refill intervals so bucket state is
	// not evicted mid-refill.
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Errorf("TTL = %v, want >= %v", cfg.TTL, 5*cfg.RefillInterval)
	}
}

func TestLoadRateLimitConfigBurstOverride(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "7")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 7 {
		t.Errorf("Capacity = %d, want 7 (RATE_LIMIT_BURST override)", cfg.Capacity)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()

	if !cfg.Enabled {
		t.Error("caching should default to enabled")
	}
	if !cfg.Methods["GET"] {
		t.Error("GET should be cached by default")
	}
	if cfg.Methods["POST"] {
		t.Error("POST must never be cached")
	}
	if cfg.TTL != 10*time.Second {
		t.Errorf("TTL = %v, want 10s", cfg.TTL)
	}
}
