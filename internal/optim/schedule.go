package optim

// LinearDecay interpolates the learning rate from base at step 0 to final at
// step total.
//
// Steps past total return final. A non-positive total returns base.
func LinearDecay(base, final float64, step, total int) float64 {
	if total <= 0 {
		return base
	}
	if step >= total {
		return final
	}
	frac := float64(step) / float64(total)
	return base + (final-base)*frac
}
