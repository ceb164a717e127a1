// Package daybook stores cash movements in one append-only text file per
// calendar day.
package daybook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"caixa/internal/core"
	"caixa/internal/log"
)

const (
	filePrefix = "movimentacoes-"
	fileExt    = ".txt"
	dateLayout = "2006-01-02"

	EmptyNotice  = "Nenhuma movimentação registrada para hoje ainda."
	HeaderBanner = "--- Movimentações do Dia ---"
	FooterBanner = "---------------------------"
)

// Book reads and appends day files under a single directory.
type Book struct {
	dir    string
	now    func() time.Time
	logger *log.Logger
}

type Option func(*Book)

// WithClock overrides the wall clock used to stamp movements and pick the
// day file.
func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

func WithLogger(logger *log.Logger) Option {
	return func(b *Book) { b.logger = logger.WithComponent(log.ComponentDaybook) }
}

func New(dir string, opts ...Option) *Book {
	b := &Book{
		dir:    dir,
		now:    time.Now,
		logger: log.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Dir returns the directory holding the day files.
func (b *Book) Dir() string {
	return b.dir
}

// PathFor returns the day file path for the calendar date of day.
func (b *Book) PathFor(day time.Time) string {
	return filepath.Join(b.dir, filePrefix+day.Format(dateLayout)+fileExt)
}

// Today returns the current time from the book's clock.
func (b *Book) Today() time.Time {
	return b.now()
}

// TodayPath returns the day file path for the current date.
func (b *Book) TodayPath() string {
	return b.PathFor(b.now())
}

// Record appends one movement to today's file, creating the directory and
// the file when missing. The file is closed before returning.
func (b *Book) Record(amount decimal.Decimal, kind core.Kind, description string) (core.Movement, error) {
	m := core.Movement{
		Time:        b.now(),
		Amount:      amount,
		Kind:        kind,
		Description: description,
	}
	path := b.PathFor(m.Time)

	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return m, fmt.Errorf("create movements directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return m, fmt.Errorf("open day file: %w", err)
	}
	if _, err := f.WriteString(core.FormatLine(m)); err != nil {
		f.Close()
		return m, fmt.Errorf("append movement: %w", err)
	}
	if err := f.Close(); err != nil {
		return m, fmt.Errorf("close day file: %w", err)
	}

	b.logger.Debug("Movement recorded",
		log.NewFields().WithMovement(m).WithPath(path).WithOperation(log.OpRecord).ToSlice()...)

	return m, nil
}

// ListToday writes today's file verbatim between banners, followed by the
// day totals when every line parses. A missing or blank file yields the
// empty notice instead.
func (b *Book) ListToday(w io.Writer) error {
	day := b.now()
	path := b.PathFor(day)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		_, err = fmt.Fprintln(w, EmptyNotice)
		return err
	}
	if err != nil {
		return fmt.Errorf("read day file: %w", err)
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		_, err = fmt.Fprintln(w, EmptyNotice)
		return err
	}

	var sb strings.Builder
	sb.WriteString("\n" + HeaderBanner + "\n")
	sb.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(FooterBanner + "\n")

	if movements, err := parseMovements(day, content); err != nil {
		b.logger.Debug("Day file has unparseable lines, skipping totals", log.FieldPath, path, log.FieldError, err)
	} else {
		sb.WriteString(core.Summarize(movements).String() + "\n")
	}

	_, err = io.WriteString(w, sb.String())
	return err
}

// Movements re-reads and parses the day file for the date of day.
func (b *Book) Movements(day time.Time) ([]core.Movement, error) {
	data, err := os.ReadFile(b.PathFor(day))
	if err != nil {
		return nil, fmt.Errorf("read day file: %w", err)
	}
	return parseMovements(day, string(data))
}

func parseMovements(day time.Time, content string) ([]core.Movement, error) {
	var out []core.Movement
	for i, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := core.ParseLine(day, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, m)
	}
	return out, nil
}
