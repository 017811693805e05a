// SPDX-License-Identifier: MIT
package coeffs

// RequiredCount reports the number of coefficient pairs (i, j) with
// 0 ≤ i ≤ maxDegree and 0 ≤ j ≤ min(i, maxOrder).
//
// When maxDegree == maxOrder this is the full triangle: Σ_{i=0..l}(i+1),
// computed in closed form. Otherwise rows above maxOrder are clipped to
// maxOrder+1 entries each.
//
// Pure function, no failure mode; a negative maxDegree yields 0.
// Complexity: O(maxDegree) time (O(1) when maxDegree == maxOrder).
func RequiredCount(maxDegree, maxOrder int) int {
	if maxDegree < 0 {
		return 0
	}
	if maxDegree == maxOrder {
		n := maxDegree + 1
		return n*(n-1)/2 + n
	}

	sum := 0
	for i := 0; i <= maxDegree; i++ {
		if i > maxOrder {
			sum += maxOrder + 1
		} else {
			sum += i + 1
		}
	}

	return sum
}

// ValidLM reports whether (l, m) is a member of the coefficient triangle,
// i.e. 0 ≤ m ≤ l.
// Complexity: O(1).
func ValidLM(l, m int) bool {
	return m >= 0 && m <= l
}
