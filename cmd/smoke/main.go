package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

func main() {
	config, err := loadEnv()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if !config.MonitorMode {
		// Default: one-shot login smoke test. The probe is informational,
		// so the exit status is 0 whether the login succeeded or not -
		// success and failure are distinguished by stdout vs stderr.
		probeLogin(newProbeClient(), loginURL, os.Stdout, os.Stderr)
		return
	}

	fmt.Println("=== Auth Endpoint Smoke Monitor ===")
	fmt.Println("Probing the local login endpoint continuously")
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()
	fmt.Printf("Metrics will be exposed on %s/metrics for Prometheus\n", config.MetricsAddr)
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup
	stopChan := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		fmt.Printf("Starting Prometheus metrics server on %s\n", config.MetricsAddr)
		if err := StartMetricsServer(config.MetricsAddr); err != nil {
			fmt.Printf("Metrics server error: %v\n", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runLoginMonitor(config, stopChan)
	}()

	<-sigChan
	fmt.Println("\n\nShutting down monitor...")
	close(stopChan)

	wg.Wait()
	fmt.Println("Monitor stopped")
}
