// Package telemetry simulates the device readings and service status the
// gateway reports. Only the uptime counter changes; the other readings are a
// fixed baseline.
package telemetry

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gatewayauth/internal/logging"
)

// Snapshot is one set of device readings.
type Snapshot struct {
	TemperatureC   float64 `json:"temperatureC"`
	CPULoadPercent float64 `json:"cpuLoadPercent"`
	RAMLoadPercent float64 `json:"ramLoadPercent"`
	UptimeSeconds  int64   `json:"uptimeSeconds"`
	SupplyVoltageV float64 `json:"supplyVoltageV"`
	TimestampUTC   string  `json:"timestampUtc"`
}

// Counts are the store sizes reported in Status.
type Counts struct {
	Users         int `json:"users"`
	AccessTokens  int `json:"accessTokens"`
	RefreshTokens int `json:"refreshTokens"`
}

// Status is the gateway health report.
type Status struct {
	Service    string `json:"service"`
	OPCUA      string `json:"opcua"`
	Cache      string `json:"cache"`
	LastReadAt string `json:"lastReadAt,omitempty"`
	Counts
}

var baseline = Snapshot{
	TemperatureC:   25.1,
	CPULoadPercent: 12.3,
	RAMLoadPercent: 44.2,
	SupplyVoltageV: 12.1,
}

// Sampler owns the uptime counter.
type Sampler struct {
	interval time.Duration
	logger   logging.Logger
	now      func() time.Time

	elapsed  atomic.Int64 // nanoseconds
	lastRead atomic.Int64 // unix nanos of the last tick, 0 before the first
}

func NewSampler(interval time.Duration, l logging.Logger) *Sampler {
	return &Sampler{
		interval: interval,
		logger:   l.With("module", "telemetry"),
		now:      time.Now,
	}
}

// Run advances the uptime counter by one interval per tick until ctx is done.
func (s *Sampler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info(ctx, "Starting telemetry sampler", "interval", s.interval.String())

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping telemetry sampler", "uptime_seconds", s.Uptime())
			return nil
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick advances the uptime counter by one interval.
func (s *Sampler) Tick() {
	s.elapsed.Add(int64(s.interval))
	s.lastRead.Store(s.now().UnixNano())
}

// Uptime returns the whole seconds counted so far.
func (s *Sampler) Uptime() int64 {
	return int64(time.Duration(s.elapsed.Load()) / time.Second)
}

// Current returns the latest snapshot.
func (s *Sampler) Current() Snapshot {
	snap := baseline
	snap.UptimeSeconds = s.Uptime()
	snap.TimestampUTC = s.now().UTC().Format(time.RFC3339)
	return snap
}

// Status reports the simulated device link together with the given counts.
func (s *Sampler) Status(c Counts) Status {
	st := Status{
		Service: "ok",
		OPCUA:   "simulated",
		Cache:   "ready",
		Counts:  c,
	}
	if ns := s.lastRead.Load(); ns != 0 {
		st.LastReadAt = time.Unix(0, ns).UTC().Format(time.RFC3339)
	}
	return st
}
