package main

import (
	"testing"
	"time"
)

func validConfig() *appConfig {
	return &appConfig{
		logFormat: "text",
		logLevel:  "info",
		queueCap:  64,
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*appConfig)
		ok     bool
	}{
		{"defaults", func(c *appConfig) {}, true},
		{"json format", func(c *appConfig) { c.logFormat = "json" }, true},
		{"bad format", func(c *appConfig) { c.logFormat = "xml" }, false},
		{"bad level", func(c *appConfig) { c.logLevel = "trace" }, false},
		{"zero queue cap", func(c *appConfig) { c.queueCap = 0 }, false},
		{"negative queue cap", func(c *appConfig) { c.queueCap = -1 }, false},
		{"negative metrics interval", func(c *appConfig) { c.logMetricsEvery = -time.Second }, false},
		{"metrics interval set", func(c *appConfig) { c.logMetricsEvery = 5 * time.Second }, true},
	}
	for _, c := range cases {
		cfg := validConfig()
		c.mutate(cfg)
		err := cfg.validate()
		if (err == nil) != c.ok {
			t.Fatalf("%s: validate() = %v, want ok=%v", c.name, err, c.ok)
		}
	}
	var nilCfg *appConfig
	if nilCfg.validate() == nil {
		t.Fatalf("nil config should not validate")
	}
}
