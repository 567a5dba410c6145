package metrics

import (
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Build information, set through -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// poller calls collect once right away and then on every tick until stop is called.
type poller struct {
	stopCh chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func newPoller() *poller {
	return &poller{stopCh: make(chan struct{})}
}

func (p *poller) start(interval time.Duration, collect func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		collect()
		for {
			select {
			case <-ticker.C:
				collect()
			case <-p.stopCh:
				return
			}
		}
	}()
}

// stop is safe to call more than once and waits for the running collection to finish.
func (p *poller) stop() {
	p.once.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

type SystemCollector struct {
	metrics   *Metrics
	logger    *zap.Logger
	startTime time.Time
	poller    *poller
}

func NewSystemCollector(metrics *Metrics, logger *zap.Logger) *SystemCollector {
	return &SystemCollector{
		metrics:   metrics,
		logger:    logger,
		startTime: time.Now(),
		poller:    newPoller(),
	}
}

func (sc *SystemCollector) Start(interval time.Duration) {
	sc.metrics.SetServiceVersion(Version, Commit, BuildDate)
	sc.poller.start(interval, sc.collect)
	sc.logger.Info("System metrics collector started", zap.Duration("interval", interval), zap.String("version", Version))
}

func (sc *SystemCollector) Stop() {
	sc.poller.stop()
	sc.logger.Info("System metrics collector stopped")
}

func (sc *SystemCollector) collect() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	sc.metrics.UpdateSystemMetrics(time.Since(sc.startTime), &memStats)
}
