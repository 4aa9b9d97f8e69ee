// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
	"time"

	"go.yaml.in/yaml/v3"
)

func TestCacheConfigTTL(t *testing.T) {
	tests := []struct {
		millis int
		want   time.Duration
	}{
		{300000, 5 * time.Minute},
		{0, 0},
		{-1, -time.Millisecond},
	}
	for _, tt := range tests {
		if got := (CacheConfig{TTLMillis: tt.millis}).TTL(); got != tt.want {
			t.Errorf("TTL(%d) = %v, want %v", tt.millis, got, tt.want)
		}
	}
}

func TestSheetsConfigYAMLInline(t *testing.T) {
	raw := []byte(`
user_agent: site-engine/0.1
document_id: doc123
revalidate_seconds: 600
`)
	var cfg SheetsConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.UserAgent != "site-engine/0.1" {
		t.Errorf("user agent = %q", cfg.UserAgent)
	}
	if cfg.DocumentID != "doc123" || cfg.RevalidateSeconds != 600 {
		t.Errorf("cfg = %+v", cfg)
	}
}
