package networth

import (
	"log/slog"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayFraction is the number of fractional digits shown for any currency.
const displayFraction = 2

// FormatCurrency formats amount in the given ISO 4217 currency, e.g.
// "$1,234.50". A blank code means USD. An unknown code is reported and
// formatted as USD instead, so that a bad record never breaks a table.
func FormatCurrency(amount Amount, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		slog.Warn("invalid currency code, using fallback", "currency", code, "fallback", DefaultCurrency)
		cur = money.GetCurrency(DefaultCurrency)
	}
	f := money.NewFormatter(displayFraction, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	minor := amount.value.Round(displayFraction).Shift(displayFraction)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return formatLarge(f, amount.value)
	}
	return f.Format(minor.IntPart())
}

// maxMinorUnits is the largest amount, in cents, money.Formatter can hold.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// formatLarge lays out amounts beyond the int64 range the way f.Format does.
func formatLarge(f *money.Formatter, value decimal.Decimal) string {
	digits := value.Abs().StringFixed(displayFraction)
	whole, frac, _ := strings.Cut(digits, ".")
	if f.Thousand != "" {
		for i := len(whole) - 3; i > 0; i -= 3 {
			whole = whole[:i] + f.Thousand + whole[i:]
		}
	}
	s := strings.Replace(f.Template, "1", whole+f.Decimal+frac, 1)
	s = strings.Replace(s, "$", f.Grapheme, 1)
	if value.IsNegative() {
		s = "-" + s
	}
	return s
}

// FormatDate formats a date-like string for display ("Mar 5, 2024").
// It returns "N/A" for a blank input and "Invalid Date" when it cannot be parsed.
func FormatDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	d, err := ParseDate(s)
	if err != nil {
		return "Invalid Date"
	}
	return d.Format(DisplayDateFormat)
}

// FormatDateForInput converts a date-like string to the YYYY-MM-DD value
// expected by a date-only form field.
func FormatDateForInput(s string) (string, error) {
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// FormatPercent formats a rate given in percent ("4.5%").
func FormatPercent(rate Amount) string { return rate.String() + "%" }

// CalculateProfitLoss returns (currentValue - buyPrice) * quantity.
func CalculateProfitLoss(buyPrice, currentValue, quantity Amount) Amount {
	return currentValue.Sub(buyPrice).Mul(quantity)
}

// CalculateTotalValue returns currentValue * quantity.
func CalculateTotalValue(currentValue, quantity Amount) Amount {
	return currentValue.Mul(quantity)
}

// TypeLabel turns a type code into a label: "credit_card" becomes "Credit Card".
// It is for display only.
func TypeLabel[T ~string](code T) string {
	words := strings.Fields(strings.ReplaceAll(string(code), "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToTitle(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// BadgeClass returns the style classes of a type badge: "credit_card" gives
// "badge credit-card". It is for display only.
func BadgeClass[T ~string](code T) string {
	return "badge " + strings.ReplaceAll(strings.ToLower(string(code)), "_", "-")
}
