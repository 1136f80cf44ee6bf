package notifier

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Notifier asks the monitoring process to restart so that it picks up topology changes.
// Restart never blocks and never fails; requests made while one is pending are coalesced.
type Notifier interface {
	Restart()
	Start()
	Stop()
}

type Config struct {
	MaxRetries     int
	InitialBackoff time.Duration
	RestartTimeout time.Duration
}

type notifier struct {
	restarter Restarter
	logger    *zap.Logger
	cfg       Config

	requests chan struct{}
	quit     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

func (n *notifier) Restart() {
	select {
	case n.requests <- struct{}{}:
	default:
		n.logger.Debug("monitor restart already pending")
	}
}

func (n *notifier) Start() {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		for {
			select {
			case <-n.quit:
				return
			case <-n.requests:
				n.restart()
			}
		}
	}()
}

func (n *notifier) Stop() {
	n.once.Do(func() {
		close(n.quit)
	})
	n.wg.Wait()
}

func (n *notifier) restart() {
	backoff := n.cfg.InitialBackoff
	attempts := max(n.cfg.MaxRetries, 1)
	for i := 1; i <= attempts; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), n.cfg.RestartTimeout)
		err := n.restarter.Restart(ctx)
		cancel()
		if err == nil {
			n.logger.Info("monitor restarted", zap.Int("attempt", i))
			return
		}
		n.logger.Warn("monitor restart failed", zap.Int("attempt", i), zap.Error(err))
		if i == attempts {
			break
		}
		select {
		case <-n.quit:
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	n.logger.Error("giving up on monitor restart", zap.Int("attempts", attempts))
}

func NewNotifier(restarter Restarter, cfg Config, logger *zap.Logger) Notifier {
	if cfg.RestartTimeout <= 0 {
		cfg.RestartTimeout = 30 * time.Second
	}
	return &notifier{
		restarter: restarter,
		logger:    logger,
		cfg:       cfg,
		requests:  make(chan struct{}, 1),
		quit:      make(chan struct{}),
	}
}
