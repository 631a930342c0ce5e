package plexconfig

import (
	"testing"
	"time"

)

func TestConfigCache(t *testing.T) {
	cache := NewConfigCache(time.Minute)

	cfg := testConfig()
	cache.Set("tenant_1", cfg)

	got, ok := cache.Get("tenant_1")
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if got.TenantConfig.PlexMap.Policy.ActiveProviderID != cfg.TenantConfig.PlexMap.Policy.ActiveProviderID {
		t.Error("Cached config does not match stored config")
	}

	// Mutating the returned copy must not leak into the cache.
	got.TenantConfig.PlexMap.Policy.ActiveProviderID = "mutated"
	again, _ := cache.Get("tenant_1")
	if again.TenantConfig.PlexMap.Policy.ActiveProviderID == "mutated" {
		t.Error("Mutation of returned config leaked into cache")
	}

	if _, ok := cache.Get("tenant_missing"); ok {
		t.Error("Expected cache miss for unknown tenant")
	}

	cache.Invalidate("tenant_1")
	if _, ok := cache.Get("tenant_1"); ok {
		t.Error("Expected cache miss after invalidation")
	}
}

func TestConfigCacheExpiry(t *testing.T) {
	cache := NewConfigCache(time.Nanosecond)

	cfg := testConfig()
	cache.Set("tenant_1", cfg)

	time.Sleep(time.Millisecond)

	if _, ok := cache.Get("tenant_1"); ok {
		t.Error("Expected expired entry to miss")
	}
}

func TestConfigCacheMutatedSetDoesNotLeak(t *testing.T) {
	cache := NewConfigCache(time.Minute)

	cfg := testConfig()
	cache.Set("tenant_1", cfg)

	cfg.TenantConfig.PlexMap.Policy.ActiveProviderID = "mutated"

	got, _ := cache.Get("tenant_1")
	if got.TenantConfig.PlexMap.Policy.ActiveProviderID == "mutated" {
		t.Error("Mutation of source config leaked into cache")
	}
}
