package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/pomdp/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by the lifecycle hooks.
// Labels use the model's names, so a Metrics is bound to one model.
type Metrics struct {
	model *domain.Model

	BeliefUpdates   *prometheus.CounterVec
	ActionsSelected *prometheus.CounterVec
	ActionValue     prometheus.Histogram
	Normalizer      prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(model *domain.Model, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		model: model,
		BeliefUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pomdp_belief_updates_total",
				Help: "Total number of belief updates",
			},
			[]string{"action", "observation"},
		),
		ActionsSelected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pomdp_actions_selected_total",
				Help: "Total number of actions chosen by the policy",
			},
			[]string{"action"},
		),
		ActionValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pomdp_action_value",
			Help:    "Expected value of the chosen alpha vector",
			Buckets: prometheus.LinearBuckets(-20, 5, 9),
		}),
		Normalizer: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pomdp_observation_probability",
			Help:    "Probability of the received observation under the prior belief",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.BeliefUpdates, m.ActionsSelected, m.ActionValue, m.Normalizer)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnBeliefUpdate: func(_ context.Context, e *domain.BeliefEvent) {
			m.BeliefUpdates.WithLabelValues(
				label(m.model.Actions, e.Action),
				label(m.model.Observations, e.Observation),
			).Inc()
			m.Normalizer.Observe(e.Normalizer)
		},
		OnActionSelected: func(_ context.Context, e *domain.ActionEvent) {
			m.ActionsSelected.WithLabelValues(label(m.model.Actions, e.Action)).Inc()
			m.ActionValue.Observe(e.Value)
		},
	}
}

func label(space domain.Space, i int) string {
	if name, err := space.Name(i); err == nil {
		return name
	}
	return strconv.Itoa(i)
}

// Combine returns hooks that call every non-nil hook of each argument in order.
func Combine(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	var belief []func(context.Context, *domain.BeliefEvent)
	var action []func(context.Context, *domain.ActionEvent)
	for _, h := range all {
		if h.OnBeliefUpdate != nil {
			belief = append(belief, h.OnBeliefUpdate)
		}
		if h.OnActionSelected != nil {
			action = append(action, h.OnActionSelected)
		}
	}

	var out domain.LifecycleHooks
	if len(belief) > 0 {
		out.OnBeliefUpdate = func(ctx context.Context, e *domain.BeliefEvent) {
			for _, fn := range belief {
				fn(ctx, e)
			}
		}
	}
	if len(action) > 0 {
		out.OnActionSelected = func(ctx context.Context, e *domain.ActionEvent) {
			for _, fn := range action {
				fn(ctx, e)
			}
		}
	}
	return out
}
