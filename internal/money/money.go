// Package money formats integer cent amounts for display. Amounts stay in
// cents everywhere else; formatting is the only place dollars appear.
package money

import "fmt"

// FormatCents renders an integer cent amount as a dollar string, e.g.
// 1234 -> "$12.34", -50 -> "-$0.50".
func FormatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// ParseDollars converts a dollar amount to cents, rejecting fractions of a
// cent. Accepts "12.34", "12.3", "12", and a leading "$".
func ParseDollars(s string) (int, error) {
	if len(s) > 0 && s[0] == '$' {
		s = s[1:]
	}
	var dollars, cents int
	var centPart string
	n, err := fmt.Sscanf(s, "%d.%s", &dollars, &centPart)
	if err != nil || n < 2 {
		if _, err := fmt.Sscanf(s, "%d", &dollars); err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		return dollars * 100, nil
	}
	switch len(centPart) {
	case 1:
		if _, err := fmt.Sscanf(centPart, "%d", &cents); err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		cents *= 10
	case 2:
		if _, err := fmt.Sscanf(centPart, "%d", &cents); err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	default:
		return 0, fmt.Errorf("invalid amount %q: at most two decimal places", s)
	}
	if dollars < 0 {
		return dollars*100 - cents, nil
	}
	return dollars*100 + cents, nil
}
