package prompt

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice renders a price as Brazilian reais, e.g. R$ 1.234,56
func FormatPrice(price float64) string {
	return "R$ " + brl.Sprintf("%.2f", price)
}

// HumanizeDelay renders minutes as 45min, 2h or 3d, rounding to the nearest unit
func HumanizeDelay(minutes int) string {
	switch {
	case minutes < 60:
		return fmt.Sprintf("%dmin", minutes)
	case minutes < 1440:
		return fmt.Sprintf("%dh", int(math.Round(float64(minutes)/60)))
	default:
		return fmt.Sprintf("%dd", int(math.Round(float64(minutes)/1440)))
	}
}
