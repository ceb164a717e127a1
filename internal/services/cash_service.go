package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"caixa/internal/core"
	"caixa/internal/daybook"
	"caixa/internal/log"
	"caixa/internal/mailer"
)

// Publisher announces cash events to other systems.
type Publisher interface {
	PublishMovementRecorded(ctx context.Context, m core.Movement, path string) error
	PublishDayFileSent(ctx context.Context, day time.Time, recipient, path string, size int64) error
}

// Sender delivers a day file by email.
type Sender interface {
	Send(ctx context.Context, path string) mailer.Result
}

// CashService orchestrates the day book, the mailer and event publishing
type CashService struct {
	book        *daybook.Book
	sender      Sender
	publisher   Publisher
	sendTimeout time.Duration
}

// NewCashService wires the service. publisher may be nil when events are
// disabled; sendTimeout <= 0 means no deadline beyond ctx.
func NewCashService(book *daybook.Book, sender Sender, publisher Publisher, sendTimeout time.Duration) *CashService {
	return &CashService{
		book:        book,
		sender:      sender,
		publisher:   publisher,
		sendTimeout: sendTimeout,
	}
}

// Record appends a movement to today's file and publishes an event.
// Storage errors are returned; publish errors are only logged.
func (s *CashService) Record(ctx context.Context, amount decimal.Decimal, kind core.Kind, description string) (core.Movement, error) {
	logger := log.FromContext(ctx).WithComponent(log.ComponentServices)

	m, err := s.book.Record(amount, kind, description)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to record movement",
			log.NewFields().WithMovement(m).WithError(err).WithErrorType(log.ErrorTypeStorage).ToSlice()...)
		return m, fmt.Errorf("record movement: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishMovementRecorded(ctx, m, s.book.PathFor(m.Time)); err != nil {
			logger.ErrorContext(ctx, "Failed to publish movement event",
				log.FieldOperation, log.OpPublish, log.FieldError, err)
		}
	}

	return m, nil
}

// ListToday prints today's movements to w.
func (s *CashService) ListToday(ctx context.Context, w io.Writer) error {
	if err := s.book.ListToday(w); err != nil {
		log.FromContext(ctx).WithComponent(log.ComponentServices).ErrorContext(ctx, "Failed to list movements",
			log.FieldOperation, log.OpList, log.FieldError, err)
		return fmt.Errorf("list movements: %w", err)
	}
	return nil
}

// SendToday emails today's file. The result is returned as is; a successful
// send is also published as an event.
func (s *CashService) SendToday(ctx context.Context) mailer.Result {
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	day := s.book.Today()
	path := s.book.PathFor(day)
	res := s.sender.Send(ctx, path)

	if res.OK() && s.publisher != nil {
		if err := s.publisher.PublishDayFileSent(ctx, day, res.Recipient, path, res.Size); err != nil {
			log.FromContext(ctx).WithComponent(log.ComponentServices).ErrorContext(ctx, "Failed to publish send event",
				log.FieldOperation, log.OpPublish, log.FieldError, err)
		}
	}

	return res
}

// Close releases the publisher when it holds a connection
func (s *CashService) Close() error {
	closer, ok := s.publisher.(io.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("close publisher: %w", err)
	}
	return nil
}
