package session

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper wraps robfig/cron and periodically evicts expired in-memory
// sessions.
type Sweeper struct {
	cron  *cron.Cron
	store *MemoryStore
	log   *zap.Logger
	spec  string // cron spec, e.g. "@every 1m"
}

func NewSweeper(store *MemoryStore, spec string, log *zap.Logger) *Sweeper {
	return &Sweeper{
		cron:  cron.New(),
		store: store,
		log:   log,
		spec:  spec,
	}
}

func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	s.log.Info("session sweeper started", zap.String("spec", s.spec))
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("session sweeper stopped")
}

func (s *Sweeper) run() {
	if n := s.store.Sweep(time.Now()); n > 0 {
		s.log.Debug("expired wizard sessions evicted", zap.Int("count", n))
	}
}
