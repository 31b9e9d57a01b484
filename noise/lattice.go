package noise

import "math"

// latticeNoise maps an integer lattice coordinate to a deterministic
// pseudo-random value in [-1, 1]. All intermediate arithmetic must stay
// in int32: the statistical quality of the hash comes from
// two's-complement wraparound of the shift and the multiplies.
func latticeNoise(x, y int32) float64 {
	n := x + y*57
	n = (n << 13) ^ n
	t := (n*(n*n*15731+789221) + 1376312589) & 0x7fffffff
	// 0.931322574615478515625e-9 == 1/2^30, mapping the 31-bit hash
	// into roughly [-1, 1].
	return 1.0 - float64(t)*0.931322574615478515625e-9
}

// interpolate blends the boundary values x and y with cubic smoothstep
// weights for a in [0, 1]. The two factors sum to 1 by the smoothstep
// identity; the polynomial form is kept as-is rather than rewritten as
// a single lerp.
func interpolate(x, y, a float64) float64 {
	negA := 1.0 - a
	negASqr := negA * negA
	fac1 := 3.0*negASqr - 2.0*(negASqr*negA)
	aSqr := a * a
	fac2 := 3.0*aSqr - 2.0*(aSqr*a)
	return x*fac1 + y*fac2
}

// value returns smoothed value noise at a fractional coordinate.
//
// It hashes the 4x4 block of lattice points at offsets -1..2 around the
// containing cell, blends a 3x3 kernel (0.25 center, 0.125 edges,
// 0.0625 corners) at each of the cell's four corners, and interpolates
// the corner values by the fractional position. The integer part
// truncates toward zero while the fraction comes from Floor; for
// negative coordinates these disagree, which is part of the sampler's
// fixed behavior.
func value(x, y float64) float64 {
	xInt := int32(x)
	yInt := int32(y)
	xFrac := x - math.Floor(x)
	yFrac := y - math.Floor(y)

	// lattice[i][j] holds the hash at (xInt+i-1, yInt+j-1).
	var lattice [4][4]float64
	for i := int32(0); i < 4; i++ {
		for j := int32(0); j < 4; j++ {
			lattice[i][j] = latticeNoise(xInt+i-1, yInt+j-1)
		}
	}

	x0y0 := corner(&lattice, 1, 1)
	x1y0 := corner(&lattice, 2, 1)
	x0y1 := corner(&lattice, 1, 2)
	x1y1 := corner(&lattice, 2, 2)

	v1 := interpolate(x0y0, x1y0, xFrac)
	v2 := interpolate(x0y1, x1y1, xFrac)
	return interpolate(v1, v2, yFrac)
}

// corner applies the 3x3 smoothing kernel centered on lattice index
// (cx, cy). The summation order is fixed: changing it perturbs the
// low bits of the result and breaks reproducibility.
func corner(lattice *[4][4]float64, cx, cy int) float64 {
	corners := lattice[cx-1][cy-1] + lattice[cx+1][cy-1] + lattice[cx-1][cy+1] + lattice[cx+1][cy+1]
	edges := lattice[cx-1][cy] + lattice[cx+1][cy] + lattice[cx][cy-1] + lattice[cx][cy+1]
	return 0.0625*corners + 0.125*edges + 0.25*lattice[cx][cy]
}
