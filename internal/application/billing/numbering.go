package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

// DefaultPrefix prefijo de los números de factura.
const DefaultPrefix = "INV"

// YearPrefix "INV-2026-": prefijo común de todos los números de un año.
func YearPrefix(prefix string, year int) string {
	return fmt.Sprintf("%s-%d-", prefix, year)
}

// FormatNumber arma "INV-2026-0001"; el consecutivo se rellena a 4 dígitos.
func FormatNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s%04d", YearPrefix(prefix, year), seq)
}

// ParseSequence extrae el consecutivo de number si pertenece a yearPrefix.
func ParseSequence(number, yearPrefix string) (int, bool) {
	rest, ok := strings.CutPrefix(number, yearPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxSequence mayor consecutivo numérico entre numbers (0 si no hay ninguno del año).
// Se compara numéricamente para que "INV-2026-10000" supere a "INV-2026-9999".
func MaxSequence(numbers []string, yearPrefix string) int {
	highest := 0
	for _, n := range numbers {
		if seq, ok := ParseSequence(n, yearPrefix); ok && seq > highest {
			highest = seq
		}
	}
	return highest
}

// ScanSequence recorre los números guardados del año y devuelve el máximo + 1.
type ScanSequence struct {
	invoices repository.InvoiceRepository
}

// NewScanSequence construye la secuencia sobre el repositorio de facturas.
func NewScanSequence(invoices repository.InvoiceRepository) *ScanSequence {
	return &ScanSequence{invoices: invoices}
}

// Current mayor consecutivo guardado para el año.
func (s *ScanSequence) Current(ctx context.Context, prefix string, year int) (int, error) {
	yp := YearPrefix(prefix, year)
	numbers, err := s.invoices.ListNumbersByPrefix(ctx, yp)
	if err != nil {
		return 0, err
	}
	return MaxSequence(numbers, yp), nil
}

// Next mayor consecutivo + 1; el primero del año es 1.
func (s *ScanSequence) Next(ctx context.Context, prefix string, year int) (int, error) {
	cur, err := s.Current(ctx, prefix, year)
	if err != nil {
		return 0, err
	}
	return cur + 1, nil
}
