package health

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"gorm.io/gorm"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"

	maxGoroutines = 10000
	maxMemoryMB   = 500
)

// HealthStatus represents the overall health of the application
type HealthStatus struct {
	Status    string                     `json:"status"`
	Timestamp time.Time                  `json:"timestamp"`
	Version   string                     `json:"version"`
	Checks    map[string]ComponentHealth `json:"checks"`
	Duration  int64                      `json:"duration_ms"`
}

// ComponentHealth represents health of a single component
type ComponentHealth struct {
	Healthy bool                   `json:"healthy"`
	Details map[string]interface{} `json:"details,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// SystemMetrics captures current system metrics
type SystemMetrics struct {
	MemoryUsageMB  uint64 `json:"memory_usage_mb"`
	GoroutineCount int    `json:"goroutine_count"`
	CPUNumCores    int    `json:"cpu_num_cores"`
	Uptime         int64  `json:"uptime_seconds"`
}

// HealthChecker provides health check functionality
type HealthChecker struct {
	db        *gorm.DB
	version   string
	startTime time.Time

	mu         sync.RWMutex
	lastStatus string
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(db *gorm.DB, version string) *HealthChecker {
	return &HealthChecker{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// Check performs a complete health check
func (hc *HealthChecker) Check() HealthStatus {
	start := time.Now()
	status := HealthStatus{
		Timestamp: start,
		Version:   hc.version,
		Checks: map[string]ComponentHealth{
			"database":   hc.checkDatabase(),
			"memory":     checkMemory(),
			"goroutines": checkGoroutines(),
		},
	}

	status.Status = StatusHealthy
	for _, c := range status.Checks {
		if !c.Healthy {
			status.Status = StatusDegraded
			break
		}
	}
	status.Duration = time.Since(start).Milliseconds()

	hc.mu.Lock()
	hc.lastStatus = status.Status
	hc.mu.Unlock()

	return status
}

// checkDatabase verifies database connectivity and latency
func (hc *HealthChecker) checkDatabase() ComponentHealth {
	if hc.db == nil {
		return ComponentHealth{Error: "database not initialized"}
	}

	start := time.Now()
	sqlDB, err := hc.db.DB()
	if err != nil {
		return ComponentHealth{Error: fmt.Sprintf("failed to get database connection: %v", err)}
	}
	if err := sqlDB.Ping(); err != nil {
		return ComponentHealth{Error: fmt.Sprintf("database ping failed: %v", err)}
	}

	latency := time.Since(start).Milliseconds()
	return ComponentHealth{
		Healthy: true,
		Details: map[string]interface{}{
			"latency_ms": latency,
			"latency_ok": latency < 100,
		},
	}
}

func checkMemory() ComponentHealth {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	allocMB := m.Alloc / 1024 / 1024
	return ComponentHealth{
		Healthy: allocMB < maxMemoryMB,
		Details: map[string]interface{}{
			"allocated_mb": allocMB,
			"sys_mb":       m.Sys / 1024 / 1024,
			"num_gc":       m.NumGC,
		},
	}
}

func checkGoroutines() ComponentHealth {
	n := runtime.NumGoroutine()
	return ComponentHealth{
		Healthy: n < maxGoroutines,
		Details: map[string]interface{}{"count": n},
	}
}

// IsHealthy reports the status of the most recent Check.
func (hc *HealthChecker) IsHealthy() bool {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.lastStatus == StatusHealthy
}

// IsReady returns true if system is ready to serve traffic
func (hc *HealthChecker) IsReady() bool {
	return hc.checkDatabase().Healthy
}

// GetMetrics returns current system metrics
func (hc *HealthChecker) GetMetrics() SystemMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return SystemMetrics{
		MemoryUsageMB:  m.Alloc / 1024 / 1024,
		GoroutineCount: runtime.NumGoroutine(),
		CPUNumCores:    runtime.NumCPU(),
		Uptime:         int64(time.Since(hc.startTime).Seconds()),
	}
}
