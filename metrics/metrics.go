package metrics

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors are the combat counters exported by a run.
type Collectors struct {
	SkillsCast     *prometheus.CounterVec
	DamageDealt    *prometheus.CounterVec
	EnemiesKilled  prometheus.Counter
	SummonsEvicted prometheus.Counter
	Wave           prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		SkillsCast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dungeon",
			Name:      "skills_cast_total",
			Help:      "Skill activations by skill and archetype.",
		}, []string{"skill", "archetype"}),
		DamageDealt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dungeon",
			Name:      "damage_dealt_total",
			Help:      "Damage applied, by the kind of entity that received it.",
		}, []string{"target"}),
		EnemiesKilled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dungeon",
			Name:      "enemies_killed_total",
			Help:      "Enemies whose health reached zero.",
		}),
		SummonsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dungeon",
			Name:      "summons_evicted_total",
			Help:      "Summons removed to make room for a new one.",
		}),
		Wave: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dungeon",
			Name:      "wave",
			Help:      "Current wave number.",
		}),
	}
	if reg != nil {
		reg.MustRegister(c.SkillsCast, c.DamageDealt, c.EnemiesKilled, c.SummonsEvicted, c.Wave)
	}
	return c
}

// Handler exposes g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Serve starts a /metrics endpoint in the background. Failures are logged,
// never fatal.
func Serve(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("metrics listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Warning: metrics server stopped: %v", err)
		}
	}()
	return srv
}
