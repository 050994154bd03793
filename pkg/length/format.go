// SPDX-License-Identifier: MPL-2.0

package length

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format returns the meters value formatted for tag, using the decimal
// separator and digits of that locale. Digit grouping is disabled and
// fraction digits are never truncated.
//
// Format switches to exponent notation exactly where String does, so very
// large and very small lengths stay short: 1e+06, 5e-324. Only the mantissa
// is localized. language.Und formats like String.
func (l Length) Format(tag language.Tag) string {
	s := l.String()
	if tag == language.Und {
		return s
	}

	p := message.NewPrinter(tag)
	mantissa, exp, scientific := strings.Cut(s, "e")
	if !scientific {
		return p.Sprint(decimal(l.meters))
	}
	m, err := strconv.ParseFloat(mantissa, 64)
	if err != nil {
		return s
	}
	return p.Sprint(decimal(m)) + "e" + exp
}

func decimal(v float64) number.Formatter {
	return number.Decimal(v, number.NoSeparator(), number.MaxFractionDigits(-1))
}
