package brewing

import (
	"github.com/prometheus/client_golang/prometheus"
)

const fizzleLabel = "fizzle"

var (
	PotionBrewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "potion_brews_total",
			Help: "Count of brewed potions by effect and strength label. Fizzles use effect=fizzle.",
		},
		[]string{"effect", "strength_label"},
	)
)

func init() {
	prometheus.MustRegister(PotionBrewsTotal)
}
