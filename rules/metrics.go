package rules

import "github.com/prometheus/client_golang/prometheus"

var (
	ticksMetric = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snek",
			Subsystem: "rules",
			Name:      "ticks_total",
			Help:      "Game ticks applied.",
		},
	)
	foodEatenMetric = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snek",
			Subsystem: "rules",
			Name:      "food_eaten_total",
			Help:      "Food picked up by the snake.",
		},
	)
	deathsMetric = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snek",
			Subsystem: "rules",
			Name:      "deaths_total",
			Help:      "Games ended, by cause of death.",
		},
		[]string{"cause"},
	)
	gamesMetric = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snek",
			Subsystem: "rules",
			Name:      "games_total",
			Help:      "Games started, restarts included.",
		},
	)
)

func init() {
	prometheus.MustRegister(ticksMetric, foodEatenMetric, deathsMetric, gamesMetric)
}
