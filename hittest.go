package main

// ResolveHit returns the index of the topmost rectangle containing (cx, cy),
// or -1. Highest z wins; equal z goes to the later index.
func ResolveHit(rects []Rectangle, cx, cy float64) int {
	best := noSelection
	for i, r := range rects {
		if !Contains(r, cx, cy) {
			continue
		}
		if best == noSelection || r.Z >= rects[best].Z {
			best = i
		}
	}
	return best
}
