package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// performLoginCheck issues one login probe cycle, records metrics and logs a
// tagged line. Each cycle carries a UUID sent as X-Probe-Run so that probe
// traffic can be correlated in the backend's request logs.
func performLoginCheck(client *http.Client, endpoint string) {
	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05")
	runID := uuid.NewString()

	statusCode, latencyMs, body, err := callLoginAPI(client, endpoint, runID)

	if err != nil || statusCode >= 400 {
		errorType := getErrorType(statusCode)
		RecordLoginError(errorType)
		RecordLoginLatency("error", latencyMs, statusCode)

		fmt.Printf("[LOGIN-MONITOR][%s][%s] %s | Latency: %.0fms | Status: %d | Error: %v\n",
			timestamp,
			runID,
			getStatusEmoji(statusCode),
			latencyMs,
			statusCode,
			err,
		)
		return
	}

	RecordLoginLatency("success", latencyMs, statusCode)

	var envelope map[string]interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		RecordLoginError("parse_error")
		fmt.Printf("[LOGIN-MONITOR][%s][%s] ⚠ | Latency: %.0fms | Status: %d | Response parse warning: %v\n",
			timestamp, runID, latencyMs, statusCode, err)
		return
	}

	field, token, ok := extractToken(envelope)
	RecordTokenPresence("access_token", field == "access_token")
	RecordTokenPresence("token", field == "token")

	tokenInfo := "no token field"
	if ok {
		tokenInfo = fmt.Sprintf("token field: %s", field)
		if expiresAt, err := decodeJWTExpiration(token); err == nil {
			tokenInfo = fmt.Sprintf("token field: %s | expires in %.1fh", field, time.Until(expiresAt).Hours())
		}
	}

	fmt.Printf("[LOGIN-MONITOR][%s][%s] %s | Latency: %.0fms | Status: %d | %s\n",
		timestamp,
		runID,
		getStatusEmoji(statusCode),
		latencyMs,
		statusCode,
		tokenInfo,
	)
}

func getErrorType(statusCode int) string {
	if statusCode >= 500 {
		return "server_error"
	} else if statusCode >= 400 {
		return "client_error"
	} else if statusCode == 0 {
		return "timeout_error"
	}
	return "request_error"
}

func getStatusEmoji(statusCode int) string {
	if statusCode >= 400 || statusCode == 0 {
		return "✗"
	} else if statusCode >= 300 {
		return "⚠"
	}
	return "✓"
}

// runLoginMonitor continuously probes the login endpoint
func runLoginMonitor(config *Config, stopChan <-chan struct{}) {
	fmt.Println("Starting login endpoint monitor...")
	fmt.Printf("   Endpoint: %s\n", loginURL)
	fmt.Printf("   Interval: %d seconds\n", config.IntervalSeconds)
	fmt.Println()

	client := newProbeClient()

	ticker := time.NewTicker(time.Duration(config.IntervalSeconds) * time.Second)
	defer ticker.Stop()

	// Run once immediately
	performLoginCheck(client, loginURL)

	for {
		select {
		case <-stopChan:
			fmt.Println("Login monitor stopped")
			return
		case <-ticker.C:
			performLoginCheck(client, loginURL)
		}
	}
}
