package prom

import (
	input "github.com/phanxgames/willow-input"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "willow_input"

// Handler is an input.Handler that counts events by kind.
type Handler struct {
	events *prometheus.CounterVec
}

// NewHandler creates a Handler whose counter is registered with reg.
func NewHandler(reg prometheus.Registerer) *Handler {
	return &Handler{
		events: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Raw input events replayed, by kind.",
		}, []string{"kind"}),
	}
}

// HandleEvent increments the counter for the event's kind.
func (h *Handler) HandleEvent(ev input.Event) {
	h.events.WithLabelValues(ev.Kind().String()).Inc()
}

// Bridge replays an input.Context subscriber into a Handler every frame and
// tracks the size of each replayed batch.
type Bridge struct {
	ctx     *input.Context
	id      input.SubscriberID
	handler *Handler
	batch   prometheus.Histogram
}

// NewBridge registers a subscriber on ctx and its metrics with reg.
func NewBridge(ctx *input.Context, reg prometheus.Registerer) *Bridge {
	factory := promauto.With(reg)
	return &Bridge{
		ctx:     ctx,
		id:      ctx.RegisterSubscriber(),
		handler: NewHandler(reg),
		batch: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "replay_batch_size",
			Help:      "Events delivered per replay.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
		}),
	}
}

// Update replays the events recorded since the previous call.
func (b *Bridge) Update() error {
	n, err := b.ctx.Pending(b.id)
	if err != nil {
		return err
	}
	if err := b.ctx.Replay(b.id, b.handler); err != nil {
		return err
	}
	b.batch.Observe(float64(n))
	return nil
}
