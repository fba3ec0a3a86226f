package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FrameMonitor tracks frames per second and, when a profile directory is
// configured, captures a CPU profile after a sustained FPS drop.
type FrameMonitor struct {
	mu          sync.Mutex
	isProfiling bool

	log          zerolog.Logger
	threshold    float64
	profilesDir  string
	captureFor   time.Duration
	warmup       float64 // seconds ignored after launch
	cooldown     float64 // seconds between two reported drops
	sampleWindow float64 // seconds per FPS sample

	clock       float64
	lastDrop    float64
	drops       int
	fps         float64
	frameCount  int
	sampleTimer float64
}

// NewFrameMonitor creates a frame monitor
func NewFrameMonitor(cfg ProfileConfig, log zerolog.Logger) *FrameMonitor {
	return &FrameMonitor{
		log:          log,
		threshold:    cfg.FPSThreshold,
		profilesDir:  cfg.Dir,
		captureFor:   5 * time.Second,
		warmup:       3,
		cooldown:     10,
		sampleWindow: 0.5,
		lastDrop:     -10,
		fps:          60,
	}
}

// FPS returns the latest sample
func (m *FrameMonitor) FPS() float64 {
	return m.fps
}

// Drops returns how many FPS drops were detected
func (m *FrameMonitor) Drops() int {
	return m.drops
}

// Tick records one frame that took dt seconds
func (m *FrameMonitor) Tick(dt float64) {
	m.clock += dt
	m.sampleTimer += dt
	m.frameCount++

	if m.sampleTimer < m.sampleWindow {
		return
	}

	m.fps = float64(m.frameCount) / m.sampleTimer
	m.frameCount = 0
	m.sampleTimer = 0

	if m.threshold <= 0 || m.fps >= m.threshold {
		return
	}
	if m.clock < m.warmup || m.clock-m.lastDrop < m.cooldown {
		return
	}

	m.lastDrop = m.clock
	m.drops++

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.log.Warn().
		Float64("fps", m.fps).
		Uint32("num_gc", ms.NumGC).
		Uint64("heap_alloc_kb", ms.HeapAlloc/1024).
		Msg("FPS drop detected")

	if m.profilesDir == "" {
		return
	}
	if err := m.CaptureProfile(fmt.Sprintf("fps%.0f", m.fps)); err != nil {
		m.log.Warn().Err(err).Msg("failed to capture profile")
	}
}

// CaptureProfile starts a CPU profile in the background
func (m *FrameMonitor) CaptureProfile(reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(m.profilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	m.isProfiling = true
	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(m.profilesDir, fmt.Sprintf("fps-drop-%s-%s.cpu.prof", timestamp, reason))

	go func() {
		defer func() {
			m.mu.Lock()
			m.isProfiling = false
			m.mu.Unlock()
		}()

		if err := captureCPUProfile(path, m.captureFor); err != nil {
			m.log.Warn().Err(err).Msg("CPU profile capture failed")
			return
		}
		m.log.Info().Str("path", path).Msg("CPU profile saved; inspect with go tool pprof -http=:8080")
	}()

	return nil
}

// IsProfiling returns whether a profile capture is currently in progress
func (m *FrameMonitor) IsProfiling() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isProfiling
}

func captureCPUProfile(path string, d time.Duration) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(d)
	pprof.StopCPUProfile()
	return nil
}
