// Package prime implements the trial-division primality test.
package prime

import "math"

// IsPrime reports whether n is prime by trial division over odd divisors
// up to floor(sqrt(n)).
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	limit := isqrt(n)
	for i := uint64(3); i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)). float64 cannot represent every uint64, so
// the estimate is nudged until r*r <= n < (r+1)*(r+1).
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	const maxRoot = 1<<32 - 1
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
