package householder

import (
	"errors"
	"math"
)

// ErrNonFinite indicates that a reflector segment contains NaN or ±Inf,
// making reflector construction impossible.
var ErrNonFinite = errors.New("householder: non-finite value in reflector segment")

// MaxAbs returns the maximum magnitude over u[start:end).
// Complexity: O(end-start).
func MaxAbs(u []float64, start, end int) float64 {
	max := 0.0
	var v float64
	for i := start; i < end; i++ {
		v = u[i]
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}

	return max
}

// ComputeReflector overwrites u[start:end) with the compact Householder
// reflector that zeroes u[start+1:end), and returns the reflector scalar
// gamma.
//
// On return:
//   - u[start] holds −tau = −sign(u₀)·‖segment‖ — the R diagonal value;
//   - u[start+1:end) holds the reflector tail v₁.. (v₀ == 1 implicitly);
//   - gamma is the scalar of Q = I − gamma·v·vᵀ.
//
// Stage 1 (Scale): find the maximum magnitude; an all-zero segment is the
// degenerate identity reflector (gamma 0, segment untouched).
// Stage 2 (Norm): divide by the maximum and accumulate the 2-norm, giving
// tau the sign of the pivot so that u₀+tau never cancels.
// Stage 3 (Normalize): divide the tail by u₀+tau, set gamma = (u₀+tau)/tau,
// and store −tau (unscaled) in the pivot slot.
//
// Errors: ErrNonFinite when the segment contains NaN or ±Inf.
// Complexity: O(end-start), no allocation.
func ComputeReflector(u []float64, start, end int) (float64, error) {
	max := MaxAbs(u, start, end)
	if max == 0 {
		// Either a true zero segment or one polluted by NaN
		// (NaN fails every > comparison, so it leaves max at 0).
		for i := start; i < end; i++ {
			if u[i] != 0 {
				return 0, ErrNonFinite
			}
		}

		return 0, nil // identity reflector
	}
	if math.IsInf(max, 0) {
		return 0, ErrNonFinite
	}

	// Scale the segment and accumulate the squared norm.
	tau := 0.0
	var d float64
	for i := start; i < end; i++ {
		u[i] /= max
		d = u[i]
		tau += d * d
	}
	tau = math.Sqrt(tau)
	// tau takes the pivot's sign: v₀ = u₀ + tau is an addition of
	// same-signed terms, immune to cancellation.
	if u[start] < 0 {
		tau = -tau
	}

	u0 := u[start] + tau
	// Normalize the tail so the implicit leading element is 1.
	for i := start + 1; i < end; i++ {
		u[i] /= u0
	}
	gamma := u0 / tau
	tau *= max // undo the scaling for the stored diagonal

	u[start] = -tau

	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		// A NaN buried in a segment with a finite maximum lands here.
		return 0, ErrNonFinite
	}

	return gamma, nil
}

// ApplyReflector applies Q = I − gamma·v·vᵀ to target over rows
// [rowStart, rowEnd):
//
//	target -= v · (gamma · vᵀ · target)
//
// v and gamma are read-only; target is mutated in place. Every element of
// v in the range is used as stored — callers holding the compact QR form
// substitute 1 at the pivot slot before calling and restore it after.
// Complexity: O(rowEnd-rowStart), no allocation.
func ApplyReflector(target, v []float64, gamma float64, rowStart, rowEnd int) {
	sum := 0.0
	for i := rowStart; i < rowEnd; i++ {
		sum += v[i] * target[i]
	}
	sum *= gamma
	for i := rowStart; i < rowEnd; i++ {
		target[i] -= v[i] * sum
	}
}

// ApplyReflectorImplicit applies the reflector like ApplyReflector but
// treats v[rowStart] as 1 regardless of the value stored there. This is
// the in-factorization form: during elimination the pivot slot of v holds
// the R diagonal, and the implicit 1 must not be materialized.
// Complexity: O(rowEnd-rowStart), no allocation.
func ApplyReflectorImplicit(target, v []float64, gamma float64, rowStart, rowEnd int) {
	// sum = vᵀ·target with v₀ == 1
	sum := target[rowStart]
	for i := rowStart + 1; i < rowEnd; i++ {
		sum += v[i] * target[i]
	}
	sum *= gamma
	target[rowStart] -= sum
	for i := rowStart + 1; i < rowEnd; i++ {
		target[i] -= v[i] * sum
	}
}
