package haloscan

import "time"

// HaloscanConfig holds upstream API settings.
type HaloscanConfig struct {
	APIKey  string        `yaml:"apiKey"`
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"` // 0 means no client deadline
}

func DefaultHaloscanConfig() HaloscanConfig {
	return HaloscanConfig{BaseURL: "https://api.haloscan.com/api"}
}
