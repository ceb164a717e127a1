package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	timeLayout     = "15:04:05"
	amountPrefix   = "] Valor: R$"
	kindSep        = ", Tipo: "
	descriptionSep = ", Descrição: "
)

// FormatLine renders a movement as a day file line, newline included:
//
//	[HH:MM:SS] Valor: R$<amount>, Tipo: <Entrada|Saída>, Descrição: <text>
func FormatLine(m Movement) string {
	return fmt.Sprintf("[%s] Valor: R$%s, Tipo: %s, Descrição: %s\n",
		m.Time.Format(timeLayout), FormatAmount(m.Amount), m.Kind, m.Description)
}

// ParseLine parses one day file line back into a movement. The date part of
// the returned time comes from day, since lines only carry the time of day.
func ParseLine(day time.Time, line string) (Movement, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < len("[00:00:00")+len(amountPrefix) || line[0] != '[' {
		return Movement{}, ErrMalformedLine
	}

	clock, err := time.Parse(timeLayout, line[1:9])
	if err != nil {
		return Movement{}, fmt.Errorf("%w: time: %v", ErrMalformedLine, err)
	}
	rest, ok := strings.CutPrefix(line[9:], amountPrefix)
	if !ok {
		return Movement{}, ErrMalformedLine
	}

	rawAmount, rest, ok := strings.Cut(rest, kindSep)
	if !ok {
		return Movement{}, ErrMalformedLine
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || !amountInRange(amount) {
		return Movement{}, fmt.Errorf("%w: amount %q", ErrMalformedLine, rawAmount)
	}

	rawKind, description, ok := strings.Cut(rest, descriptionSep)
	if !ok {
		return Movement{}, ErrMalformedLine
	}
	kind := Kind(rawKind)
	if err := kind.Validate(); err != nil {
		return Movement{}, fmt.Errorf("%w: kind %q", ErrMalformedLine, rawKind)
	}
	if strings.TrimSpace(description) == "" {
		return Movement{}, fmt.Errorf("%w: %v", ErrMalformedLine, ErrEmptyDescription)
	}

	y, mo, d := day.Date()
	return Movement{
		Time:        time.Date(y, mo, d, clock.Hour(), clock.Minute(), clock.Second(), 0, day.Location()),
		Amount:      amount,
		Kind:        kind,
		Description: description,
	}, nil
}
