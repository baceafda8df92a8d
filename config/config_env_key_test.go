package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"orderEvents": map[string]any{
			"verifyPushAuth": false,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "ORDEREVENTS_VERIFYPUSHAUTH", want: "orderEvents.verifyPushAuth"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Storage.Driver != StorageDriverPostgres {
		t.Fatalf("Storage.Driver = %q, want %q", cfg.Storage.Driver, StorageDriverPostgres)
	}
	if cfg.Membership.CardValidityYears != defaultCardValidityYears {
		t.Fatalf("CardValidityYears = %d, want %d", cfg.Membership.CardValidityYears, defaultCardValidityYears)
	}
	if cfg.Metrics.Path != defaultMetricsPath {
		t.Fatalf("Metrics.Path = %q, want %q", cfg.Metrics.Path, defaultMetricsPath)
	}
}

func TestMembershipConfig_Location(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
	}{
		{name: "empty falls back to UTC", timezone: "", want: "UTC"},
		{name: "unknown falls back to UTC", timezone: "Nowhere/Land", want: "UTC"},
		{name: "named zone", timezone: "Asia/Ho_Chi_Minh", want: "Asia/Ho_Chi_Minh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MembershipConfig{Timezone: tt.timezone}.Location()
			if got.String() != tt.want {
				t.Fatalf("Location() = %s, want %s", got, tt.want)
			}
		})
	}
}
