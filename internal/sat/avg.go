package sat

// EMA is an exponential moving average, grounded on the teacher's
// top-level sat/avg.go. The core solver has no use for it (no restarts to
// schedule against), but internal/experiment reuses it to report a
// smoothed conflicts/sec rate across a puzzle batch.
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay in [0,1): closer to 1 weighs
// history more heavily, closer to 0 tracks the latest sample more closely.
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds x into the average.
func (ema *EMA) Add(x float64) {
	if !ema.init {
		ema.init = true
		ema.value = x
	} else {
		ema.value = ema.decay*ema.value + x*(1-ema.decay)
	}
}

// Val returns the current average.
func (ema *EMA) Val() float64 {
	return ema.value
}
