package domain

import (
	"strconv"
	"strings"
)

// FormatINR renders whole rupees the way the en-IN locale does:
// the last three digits grouped, then groups of two ("₹1,00,000.00").
func FormatINR(rupees uint64) string {
	digits := strconv.FormatUint(rupees, 10)
	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		digits = strings.Join(groups, ",") + "," + tail
	}

	return "₹" + digits + ".00"
}
