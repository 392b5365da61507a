package utils

import (
	"strconv"
	"strings"
)

// FormatINR renders a rupee amount with Indian digit grouping, e.g. ₹1,28,800.
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "₹" + groupIndian(amount)
}

// groupIndian puts the last three digits together and then groups by two.
func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head, tail := str[:len(str)-3], str[len(str)-3:]
	var out strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%2 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	out.WriteByte(',')
	out.WriteString(tail)
	return out.String()
}
