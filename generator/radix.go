package generator

import (
	"math"
	"strconv"
	"strings"
)

const radixDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// formatRadix renders a non-negative finite value in the given radix using the
// shortest fraction that still identifies the value, the same text a
// JavaScript engine returns for Number.prototype.toString(radix).
func formatRadix(value float64, radix int) string {
	integer := math.Floor(value)
	fraction := value - integer
	delta := 0.5 * (math.Nextafter(value, math.Inf(1)) - value)
	delta = math.Max(math.Nextafter(0, 1), delta)

	var digits []byte
	if fraction >= delta {
		base := float64(radix)
		for {
			fraction *= base
			delta *= base
			digit := int(fraction)
			digits = append(digits, radixDigits[digit])
			fraction -= float64(digit)
			if fraction > 0.5 || (fraction == 0.5 && digit&1 == 1) {
				if fraction+delta > 1 {
					digits, integer = roundUp(digits, integer, radix)
					break
				}
			}
			if fraction < delta {
				break
			}
		}
	}

	var b strings.Builder
	b.WriteString(strconv.FormatInt(int64(integer), radix))
	if len(digits) > 0 {
		b.WriteByte('.')
		b.Write(digits)
	}
	return b.String()
}

// roundUp increments the last fraction digit, dropping digits that overflow
// and carrying into the integer part when every digit overflows.
func roundUp(digits []byte, integer float64, radix int) ([]byte, float64) {
	for len(digits) > 0 {
		last := len(digits) - 1
		digit := strings.IndexByte(radixDigits, digits[last])
		digits = digits[:last]
		if digit+1 < radix {
			return append(digits, radixDigits[digit+1]), integer
		}
	}
	return digits, integer + 1
}
