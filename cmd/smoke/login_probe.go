package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Login endpoint and credentials for the local backend smoke test.
// These are intentionally hard-coded: the probe exercises the fixed
// superadmin account seeded by the local dev stack.
const (
	loginURL      = "http://localhost:3000/api/login"
	loginEmail    = "superadmin@test.com"
	loginPassword = "Test123!"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func newProbeClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
	}
}

// callLoginAPI issues one POST to the login endpoint and returns the status
// code, latency and raw response body. runID is sent as X-Probe-Run when
// non-empty (monitor mode); the one-shot probe sends no extra headers.
func callLoginAPI(client *http.Client, endpoint string, runID string) (int, float64, []byte, error) {
	bodyBytes, _ := json.Marshal(loginRequest{
		Email:    loginEmail,
		Password: loginPassword,
	})

	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if runID != "" {
		req.Header.Set("X-Probe-Run", runID)
	}

	startTime := time.Now()
	resp, err := client.Do(req)
	latencyMs := float64(time.Since(startTime).Milliseconds())

	if err != nil {
		return 0, latencyMs, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return resp.StatusCode, latencyMs, respBody, nil
}

// probeLogin performs the one-shot login smoke test. Success output goes to
// stdout, errors to stderr. The probe is informational: it issues exactly one
// request and never retries.
func probeLogin(client *http.Client, endpoint string, stdout, stderr io.Writer) {
	statusCode, _, body, err := callLoginAPI(client, endpoint, "")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return
	}

	if statusCode < 200 || statusCode > 299 {
		// Prefer the server-supplied error body when one came back
		if len(body) > 0 {
			fmt.Fprintf(stderr, "Error: %s\n", body)
		} else {
			fmt.Fprintf(stderr, "Error: request failed with status %d\n", statusCode)
		}
		return
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		if len(body) > 0 {
			fmt.Fprintf(stderr, "Error: %s\n", body)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return
	}

	fmt.Fprintf(stdout, "Success: %s\n", body)

	field, token, ok := extractToken(envelope)
	if !ok {
		return
	}

	fmt.Fprintln(stdout)
	if field == "access_token" {
		fmt.Fprintln(stdout, "✅ Access token received!")
	} else {
		fmt.Fprintln(stdout, "✅ Token received!")
	}
	fmt.Fprintf(stdout, "Token: %s\n", token)
}

// extractToken looks up the recognized token fields in priority order:
// access_token first, then token. A field only counts when its value is
// truthy.
func extractToken(envelope map[string]interface{}) (field string, token string, ok bool) {
	for _, key := range []string{"access_token", "token"} {
		if v, present := envelope[key]; present && truthy(v) {
			return key, tokenString(v), true
		}
	}
	return "", "", false
}

// truthy mirrors JSON/JS truthiness: null, false, 0 and "" are falsy,
// everything else (including empty objects and arrays) is truthy.
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	default:
		return true
	}
}

func tokenString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
