package recovery

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cardpay/backend/internal/config"
	"github.com/cardpay/backend/internal/domain"
)

type Registry interface {
	FindStalePending(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.Operation, error)
}

type Orchestrator interface {
	Resolve(ctx context.Context, op domain.Operation) error
}

var resolvingOps sync.Map

// Service periodically re-drives operations stranded in pending by a
// crash or a lost client, so every operation eventually reaches a
// terminal state without double-applying any balance effect.
type Service struct {
	registry      Registry
	orchestrator  Orchestrator
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
	pendingTTL    time.Duration
}

func New(cfg *config.Config, registry Registry, orchestrator Orchestrator) *Service {
	return &Service{
		registry:      registry,
		orchestrator:  orchestrator,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
		pendingTTL:    cfg.PendingTTL,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Recovery service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.pendingTTL)
	ops, err := s.registry.FindStalePending(ctx, cutoff, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch stale operations", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, op := range ops {
		op := op

		if _, loaded := resolvingOps.LoadOrStore(op.OperationNo, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer resolvingOps.Delete(op.OperationNo)
				return s.resolve(ctx, op)
			})
			if err != nil {
				resolvingOps.Delete(op.OperationNo)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error resolving operations", zap.Error(err))
	}
}

func (s *Service) resolve(ctx context.Context, op domain.Operation) error {
	zap.L().Info("re-driving stale operation",
		zap.String("operation_no", op.OperationNo), zap.String("kind", op.Kind))
	if err := s.orchestrator.Resolve(ctx, op); err != nil {
		// terminal business errors mean the record is resolved now;
		// only log, the next sweep retries whatever is still pending
		zap.L().Info("stale operation resolved with error",
			zap.String("operation_no", op.OperationNo), zap.Error(err))
	}
	return nil
}
