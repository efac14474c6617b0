package service

import (
	"sync"
	"time"

	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/store"
	"github.com/openclinic/hms/pkg/metrics"
	"go.uber.org/zap"
)

// ActivityService persists activity-log entries asynchronously. Writes are
// fire-and-forget side effects of other operations: a full buffer drops the
// entry with a warning rather than blocking the request path.
type ActivityService struct {
	store     *store.Store
	log       *zap.Logger
	collector *metrics.Collector
	entries   chan *domain.CreateActivityLogCommand
	done      chan struct{}
	closeOnce sync.Once
}

func NewActivityService(st *store.Store, log *zap.Logger, collector *metrics.Collector, bufferSize int) *ActivityService {
	svc := &ActivityService{
		store:     st,
		log:       log,
		collector: collector,
		entries:   make(chan *domain.CreateActivityLogCommand, bufferSize),
		done:      make(chan struct{}),
	}
	go svc.worker()
	return svc
}

// Record enqueues an activity entry for async persistence.
func (s *ActivityService) Record(cmd domain.CreateActivityLogCommand) {
	select {
	case s.entries <- &cmd:
	default:
		s.collector.ActivityBufferDropped.Inc()
		s.log.Warn("activity log buffer full, dropping entry",
			zap.String("activity_type", cmd.ActivityType),
		)
	}
}

// Shutdown drains the queue, waiting up to 10 seconds. Safe to call more
// than once.
func (s *ActivityService) Shutdown() {
	s.closeOnce.Do(func() { close(s.entries) })
	select {
	case <-s.done:
	case <-time.After(10 * time.Second):
		s.log.Warn("activity service shutdown timed out; some entries may be lost")
	}
}

func (s *ActivityService) worker() {
	defer close(s.done)
	for cmd := range s.entries {
		s.store.AppendActivityLog(cmd)
		s.collector.ActivityEntriesTotal.Inc()
	}
}
