package isoduration

import "strconv"

// extract returns the magnitude preceding each of the requested designator
// letters in segment. It makes a single linear pass: decimal digits
// accumulate into a run, a requested designator ending a run flushes it as
// that designator's value, and any other byte resets the run. A designator
// with an empty digit run, or a run too large for an int, is skipped.
// Designators are independent: a designator missing from the segment is
// simply absent from the result, and the first occurrence wins if one
// somehow repeats. extract never fails.
func extract(segment string, designators []byte) map[byte]int {
	found := make(map[byte]int, len(designators))
	start := -1 // start of the current digit run, or -1 outside a run
	for i := 0; i < len(segment); i++ {
		b := segment[i]
		if b >= '0' && b <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && isDesignator(b, designators) {
			if _, ok := found[b]; !ok {
				if v, err := strconv.Atoi(segment[start:i]); err == nil {
					found[b] = v
				}
			}
		}
		start = -1
	}
	return found
}

// isDesignator returns true if b is one of the requested designators.
func isDesignator(b byte, designators []byte) bool {
	for _, d := range designators {
		if b == d {
			return true
		}
	}
	return false
}
