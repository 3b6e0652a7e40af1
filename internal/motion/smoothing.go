package motion

// Smooth moves current a fixed fraction of the way toward target.
// With target in [0,1] and factor in (0,1] the result never overshoots,
// and decays toward target without ever jumping discontinuously.
func Smooth(current, target, factor float64) float64 {
	return current + (target-current)*factor
}
