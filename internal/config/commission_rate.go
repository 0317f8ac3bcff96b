package config

import (
	"math"
	"sync/atomic"
)

// CommissionRateHolder is the process-wide commission rate. Admins can
// change it at runtime; the new rate applies only to commissions computed
// after the change, because every Commission row snapshots the rate it was
// computed with.
type CommissionRateHolder struct {
	bits atomic.Uint64
}

func NewCommissionRateHolder(rate float64) *CommissionRateHolder {
	h := &CommissionRateHolder{}
	h.Set(rate)
	return h
}

func (h *CommissionRateHolder) Rate() float64 {
	return math.Float64frombits(h.bits.Load())
}

func (h *CommissionRateHolder) Set(rate float64) {
	h.bits.Store(math.Float64bits(rate))
}
