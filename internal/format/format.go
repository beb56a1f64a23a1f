// Package format renders amounts and dates for people.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats values for one language and currency.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// New returns a formatter for the language and currency.
func New(tag language.Tag, unit currency.Unit) Formatter {
	return Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// vnd is the Vietnamese đồng; x/text/currency exports no VND constant.
var vnd = currency.MustParseISO("VND")

// Default formats Vietnamese đồng for Vietnamese readers.
var Default = New(language.Vietnamese, vnd)

var symbols = map[currency.Unit]string{
	vnd:          "₫",
	currency.USD: "$",
	currency.EUR: "€",
}

// Symbol returns the currency symbol, or the ISO code when the currency
// has no known symbol.
func (f Formatter) Symbol() string {
	if s, ok := symbols[f.unit]; ok {
		return s
	}
	return f.unit.String()
}

// Currency formats the amount rounded to whole units with grouped digits,
// e.g. "1.234.567 ₫".
func (f Formatter) Currency(amount decimal.Decimal) string {
	return f.printer.Sprintf("%d %s", amount.Round(0).IntPart(), f.Symbol())
}

// Number formats the amount with grouped digits and up to two decimals.
func (f Formatter) Number(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return f.printer.Sprintf("%d", amount.IntPart())
	}

	v, _ := amount.Round(2).Float64()
	return f.printer.Sprintf("%.2f", v)
}

// Percent formats a percentage with one decimal.
func (f Formatter) Percent(p decimal.Decimal) string {
	v, _ := p.Round(1).Float64()
	return f.printer.Sprintf("%.1f%%", v)
}

// Date formats the date as day/month/year.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateShort formats the date as day/month.
func DateShort(t time.Time) string {
	return t.Format("02/01")
}

// Relative describes the date relative to now: "Hôm nay", "Hôm qua",
// "N ngày trước" within a week and the date otherwise.
func Relative(t, now time.Time) string {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	ty, tm, td := t.In(now.Location()).Date()
	day := time.Date(ty, tm, td, 0, 0, 0, 0, now.Location())

	days := int(today.Sub(day).Hours() / 24)
	switch {
	case days == 0:
		return "Hôm nay"
	case days == 1:
		return "Hôm qua"
	case days > 1 && days < 7:
		return message.NewPrinter(language.Vietnamese).Sprintf("%d ngày trước", days)
	}
	return Date(t)
}
