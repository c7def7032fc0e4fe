// Package money concentra el redondeo y el formato de importes y horas.
//
// Todos los importes se manejan como decimal.Decimal; el redondeo a 2 decimales es
// "half away from zero", equivalente a round(x*100)/100 para valores no negativos.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Places decimales de todo importe u hora almacenado.
const Places = 2

var printer = message.NewPrinter(language.English)

// Round2 redondea a 2 decimales.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Amount calcula hours × rate redondeado a 2 decimales.
func Amount(hours, rate decimal.Decimal) decimal.Decimal {
	return Round2(hours.Mul(rate))
}

// Format devuelve el importe con 2 decimales y separador de miles: 1234.5 → "1,234.50".
// Se parte de la representación exacta; nunca pasa por float64.
func Format(d decimal.Decimal) string {
	fixed := Round2(d).Abs().StringFixed(Places)
	intPart, frac, _ := strings.Cut(fixed, ".")
	sign := ""
	if Round2(d).IsNegative() {
		sign = "-"
	}
	return sign + groupThousands(intPart) + "." + frac
}

// groupThousands agrupa dígitos de a tres; dentro de int64 delega en el printer de x/text.
func groupThousands(digits string) string {
	if n := decimal.RequireFromString(digits).BigInt(); n.IsInt64() {
		return printer.Sprintf("%d", n.Int64())
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatHours igual que Format; las horas también se muestran con 2 decimales.
func FormatHours(d decimal.Decimal) string {
	return Format(d)
}
