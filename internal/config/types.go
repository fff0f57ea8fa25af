package config

import "time"

// GmotionConfig is the top-level configuration structure for gmotion.
type GmotionConfig struct {
	Gmsaas GmsaasConfig `yaml:"gmsaas"`
}

// GmsaasConfig defines how the external gmsaas CLI is invoked.
type GmsaasConfig struct {
	// Path is the gmsaas binary name or absolute path (default: "gmsaas").
	Path string `yaml:"path,omitempty"`
	// SettleIntervalMs is the delay, in milliseconds, granted to Genymotion
	// SaaS before re-reading an instance whose ADB serial was not yet
	// populated in the adbconnect response (default: 500).
	SettleIntervalMs int `yaml:"settleIntervalMs,omitempty"`
}

// SettleInterval returns the configured settle delay as a time.Duration.
func (c GmsaasConfig) SettleInterval() time.Duration {
	return time.Duration(c.SettleIntervalMs) * time.Millisecond
}

// GetDefaultConfig returns the default configuration for gmotion.
func GetDefaultConfig() GmotionConfig {
	return GmotionConfig{
		Gmsaas: GmsaasConfig{
			Path:             "gmsaas",
			SettleIntervalMs: 500,
		},
	}
}
