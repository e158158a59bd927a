package util

import "strconv"

// FormatKRW renders a whole-KRW amount with thousands separators and the
// 원 suffix, e.g. 55000 -> "55,000원".
func FormatKRW(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	out := make([]byte, 0, len(digits)+(len(digits)-1)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}

	return sign + string(out) + "원"
}
