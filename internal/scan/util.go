package scan

import "math"

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// scanNumber reads a decimal run into an int, saturating at the C
// INT_MAX rather than wrapping. Returns 0 when no digit is present.
func (sc *Scanner) scanNumber() int {
	n := 0
	for isDec(sc.cur.Peek()) {
		d := int(sc.cur.Bump() - '0')
		if n > (math.MaxInt32-d)/10 {
			n = math.MaxInt32
			continue
		}
		n = n*10 + d
	}
	return n
}
