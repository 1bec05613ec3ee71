package common

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Month abbreviations as they appear on Argentine statements. Spanish
// and English forms are mixed freely by the issuers, so both are kept
// in one table.
var meses = map[string]time.Month{
	"ene": time.January, "jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"abr": time.April, "apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August, "aug": time.August,
	"sep": time.September, "set": time.September,
	"oct": time.October,
	"nov": time.November,
	"dic": time.December, "dec": time.December,
}

// ParseMonto decodes an amount written with Argentine conventions:
// "." groups thousands, "," marks decimals, an optional "$" prefix and
// a leading "-" for negatives. A miss returns ok=false, never an error,
// so callers can treat absence as a skip signal.
func ParseMonto(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = strings.TrimSpace(s[1:])
		s = strings.TrimPrefix(s, "$")
	}

	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	if s == "" || !strings.ContainsAny(s, "0123456789") {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, true
}

// ParseFechaAbreviada decodes tokens like "20-Nov-25" or "16-Ago-25".
// Unrecognized month abbreviations yield ok=false so callers can try an
// alternate pattern. Two-digit years are read as 2000+YY.
func ParseFechaAbreviada(token string) (Fecha, bool) {
	parts := strings.Split(strings.TrimSpace(token), "-")
	if len(parts) != 3 {
		return Fecha{}, false
	}

	day, ok := atoiStrict(parts[0])
	if !ok {
		return Fecha{}, false
	}
	month, ok := meses[strings.ToLower(parts[1])]
	if !ok {
		return Fecha{}, false
	}
	year, ok := atoiStrict(parts[2])
	if !ok {
		return Fecha{}, false
	}
	if year < 100 {
		year += 2000
	}

	if !validDate(year, month, day) {
		return Fecha{}, false
	}
	return NewFecha(year, month, day), true
}

// ParseFechaBarras decodes "D/M/Y" or "D-M-Y" with 2- or 4-digit years.
// Day-first ordering is assumed; month-first is only attempted when
// day-first does not form a valid calendar date.
func ParseFechaBarras(token string) (Fecha, bool) {
	s := strings.TrimSpace(token)
	sep := "/"
	if !strings.Contains(s, "/") {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Fecha{}, false
	}

	first, ok := atoiStrict(parts[0])
	if !ok {
		return Fecha{}, false
	}
	second, ok := atoiStrict(parts[1])
	if !ok {
		return Fecha{}, false
	}
	year, ok := atoiStrict(parts[2])
	if !ok {
		return Fecha{}, false
	}
	if year < 100 {
		year += 2000
	}

	if validDate(year, time.Month(second), first) {
		return NewFecha(year, time.Month(second), first), true
	}
	if validDate(year, time.Month(first), second) {
		return NewFecha(year, time.Month(first), second), true
	}
	return Fecha{}, false
}

func validDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 {
		return false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return t.Day() == day && t.Month() == month && t.Year() == year
}

func atoiStrict(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
