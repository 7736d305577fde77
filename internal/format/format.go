// Package format renders prices and dates for display.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

func tagFor(lang string) language.Tag {
	switch strings.ToLower(lang) {
	case "en":
		return language.AmericanEnglish
	default:
		return language.MustParse("es-CL")
	}
}

// FmtCurrency formats a whole amount for display with locale grouping.
// Example: FmtCurrency(1200000, "CLP", "es") => "$1.200.000"
func FmtCurrency(amount int64, currency, lang string) string {
	p := message.NewPrinter(tagFor(lang))
	currency = strings.ToUpper(strings.TrimSpace(currency))
	switch currency {
	case "CLP", "ARS":
		return sign(amount) + "$" + p.Sprint(number.Decimal(abs(amount)))
	case "USD":
		return sign(amount) + "US$" + p.Sprint(number.Decimal(float64(abs(amount)), number.Scale(2)))
	default:
		return strings.TrimSpace(currency + " " + p.Sprint(number.Decimal(amount)))
	}
}

// FmtDate formats t in the short form used on legal pages.
func FmtDate(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	switch strings.ToLower(lang) {
	case "en":
		return t.Format("Jan 2, 2006")
	default:
		return t.Format("02-01-2006")
	}
}

// Percent renders a whole percentage, e.g. "-23%".
func Percent(pct int, lang string) string {
	return message.NewPrinter(tagFor(lang)).Sprintf("-%d%%", pct)
}

func sign(n int64) string {
	if n < 0 {
		return "-"
	}
	return ""
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
