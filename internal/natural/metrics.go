package natural

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opAdd    = "add"
	opSub    = "sub"
	opMul    = "mul"
	opSqr    = "sqr"
	opQuoRem = "quorem"
	opShift  = "shift"
	opGCD    = "gcd"
)

var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mpkernel_natural_operations_total",
		Help: "Number of natural-number operations executed, by operation.",
	},
	[]string{"op"},
)

// opCounters binds each label once so the arithmetic paths only pay for an
// atomic add.
var opCounters = func() map[string]prometheus.Counter {
	m := make(map[string]prometheus.Counter)
	for _, op := range []string{opAdd, opSub, opMul, opSqr, opQuoRem, opShift, opGCD} {
		m[op] = operationsTotal.WithLabelValues(op)
	}
	return m
}()

func countOp(op string) {
	opCounters[op].Inc()
}
