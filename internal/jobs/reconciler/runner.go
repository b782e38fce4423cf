package reconciler

import (
	"context"
	"time"

	"github.com/Guiirs/api-inmidia-2026-sub000/internal/usecase/reconcile_proposals"
)

// Sweeper executa uma passada de reconciliação
type Sweeper interface {
	Execute(ctx context.Context) (*reconcile_proposals.Result, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Runner agenda a varredura de reconciliação em intervalo fixo.
// A primeira passada roda logo na subida, para não esperar um intervalo
// inteiro com o banco possivelmente divergente.
type Runner struct {
	sweeper  Sweeper
	interval time.Duration
	logger   Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewRunner cria o runner da varredura
func NewRunner(sweeper Sweeper, interval time.Duration, logger Logger) *Runner {
	return &Runner{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start dispara o loop em background
func (r *Runner) Start() {
	go r.loop()
}

// Stop encerra o loop e espera a passada em andamento terminar
func (r *Runner) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

func (r *Runner) loop() {
	defer close(r.doneCh)

	r.logger.Info("Reconciler: starting, interval=%s", r.interval)
	r.run()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.run()
		case <-r.stopCh:
			r.logger.Info("Reconciler: stopped")
			return
		}
	}
}

func (r *Runner) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.interval)
	defer cancel()

	if _, err := r.sweeper.Execute(ctx); err != nil {
		r.logger.Error("Reconciler: sweep failed: %v", err)
	}
}
