package notifier

import (
	"context"
	"time"
)

// Sender entrega um evento ao destino final
type Sender interface {
	Notify(ctx context.Context, event Event) error
}

// Metrics contadores de notificações (opcional)
type Metrics interface {
	IncNotification(event, outcome string)
}

// deliveryTimeout teto por entrega, independente do timeout do http.Client
const deliveryTimeout = 10 * time.Second

// Dispatcher fila em memória com um worker de entrega.
// Enqueue nunca bloqueia nem falha: com a fila cheia ou o dispatcher
// parado, o evento é descartado e logado. A entrega acontece fora da
// transação e fora do caminho da requisição.
type Dispatcher struct {
	sender  Sender
	queue   chan Event
	log     Logger
	metrics Metrics

	stop chan struct{}
	done chan struct{}
}

// NewDispatcher cria o dispatcher com a capacidade de fila informada.
// metrics pode ser nil.
func NewDispatcher(sender Sender, queueSize int, log Logger, metrics Metrics) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		sender:  sender,
		queue:   make(chan Event, queueSize),
		log:     log,
		metrics: metrics,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start inicia o worker de entrega
func (d *Dispatcher) Start() {
	go d.run()
}

// Stop encerra o worker após drenar os eventos já enfileirados
func (d *Dispatcher) Stop() {
	close(d.stop)
	<-d.done
}

// Enqueue registra a intenção de notificação. Nunca retorna erro.
func (d *Dispatcher) Enqueue(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	select {
	case d.queue <- event:
	default:
		d.log.Warn("notifier: queue full, dropping event type=%s company=%d", event.Type, event.CompanyID)
		d.observe(event.Type, "dropped")
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for {
		select {
		case event := <-d.queue:
			d.deliver(event)
		case <-d.stop:
			// Drena o que restar na fila antes de encerrar
			for {
				select {
				case event := <-d.queue:
					d.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := d.sender.Notify(ctx, event); err != nil {
		// Falha de entrega é apenas logada; nada é propagado nem refeito
		d.log.Error("notifier: delivery failed type=%s company=%d: %v", event.Type, event.CompanyID, err)
		d.observe(event.Type, "error")
		return
	}

	d.observe(event.Type, "ok")
}

func (d *Dispatcher) observe(eventType, outcome string) {
	if d.metrics != nil {
		d.metrics.IncNotification(eventType, outcome)
	}
}

// NopDispatcher implementação nula usada quando o notifier está
// desabilitado na configuração.
type NopDispatcher struct{}

// Enqueue descarta o evento
func (NopDispatcher) Enqueue(Event) {}
