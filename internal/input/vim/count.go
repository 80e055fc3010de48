package vim

import "math"

// MaxCount caps accumulated counts so that multiplication cannot overflow.
const MaxCount = math.MaxInt32

// AccumulateDigit appends a decimal digit to a count, capping at MaxCount.
// Only ASCII digits are accepted; ok is false for anything else.
func AccumulateDigit(count int, c byte) (next int, ok bool) {
	if c < '0' || c > '9' {
		return count, false
	}
	digit := int(c - '0')
	if count > (MaxCount-digit)/10 {
		return MaxCount, true
	}
	return count*10 + digit, true
}

// IsCountStart returns true if the character could start a count.
// Note: '0' cannot start a count (it's a motion to line start).
func IsCountStart(c byte) bool {
	return c >= '1' && c <= '9'
}

// IsCountDigit returns true if the character is a digit valid in a count.
func IsCountDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// CombineCounts multiplies two counts together with overflow protection.
// Zero means "unspecified" and counts as 1.
// e.g., "2d3w" = delete (2*3=6) words
func CombineCounts(count1, count2 int) int {
	if count1 <= 0 {
		count1 = 1
	}
	if count2 <= 0 {
		count2 = 1
	}

	if count1 > MaxCount/count2 {
		return MaxCount
	}

	return count1 * count2
}
