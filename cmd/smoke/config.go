package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	MonitorMode     bool
	IntervalSeconds int
	MetricsAddr     string
}

func loadEnv() (*Config, error) {
	config := &Config{}

	// First, try to load from environment variables (for CI/deployed runs)
	monitor := strings.TrimSpace(os.Getenv("SMOKE_MONITOR"))
	interval := strings.TrimSpace(os.Getenv("SMOKE_INTERVAL_SECONDS"))
	metricsAddr := strings.TrimSpace(os.Getenv("SMOKE_METRICS_ADDR"))

	config.MonitorMode = monitor != ""
	config.MetricsAddr = metricsAddr

	if interval != "" {
		n, err := strconv.Atoi(interval)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid SMOKE_INTERVAL_SECONDS %q", interval)
		}
		config.IntervalSeconds = n
	}

	// If any env var is set, skip the .env file
	if monitor != "" || interval != "" || metricsAddr != "" {
		return applyDefaults(config), nil
	}

	// Otherwise, try to load from .env file (for local development)
	file, err := os.Open(".env")
	if err != nil {
		// No .env file and no env vars is fine - the tool runs the
		// one-shot probe with its defaults
		return applyDefaults(config), nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		switch key {
		case "SMOKE_MONITOR":
			config.MonitorMode = value != ""
		case "SMOKE_INTERVAL_SECONDS":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid SMOKE_INTERVAL_SECONDS %q in .env file", value)
			}
			config.IntervalSeconds = n
		case "SMOKE_METRICS_ADDR":
			config.MetricsAddr = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	return applyDefaults(config), nil
}

func applyDefaults(config *Config) *Config {
	if config.IntervalSeconds == 0 {
		config.IntervalSeconds = 30
	}
	if config.MetricsAddr == "" {
		config.MetricsAddr = ":2112"
	}
	return config
}
