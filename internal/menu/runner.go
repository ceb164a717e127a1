package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"caixa/internal/core"
	"caixa/internal/log"
	"caixa/internal/mailer"
)

// Actions are the side effects the menu can trigger.
type Actions interface {
	Record(ctx context.Context, amount decimal.Decimal, kind core.Kind, description string) (core.Movement, error)
	ListToday(ctx context.Context, w io.Writer) error
	SendToday(ctx context.Context) mailer.Result
}

type Runner struct {
	actions Actions
	in      *bufio.Reader
	out     io.Writer
	logger  *log.Logger
}

func NewRunner(actions Actions, in io.Reader, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Discard()
	}
	return &Runner{
		actions: actions,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger.WithComponent(log.ComponentMenu),
	}
}

// Run blocks on input until the operator exits or input ends. It returns an
// error only when reading input or recording a movement fails.
func (r *Runner) Run(ctx context.Context) error {
	state, draft := MainMenu, Draft{}
	for state != Exited {
		fmt.Fprint(r.out, Prompt(state))

		line, err := r.readLine()
		if errors.Is(err, io.EOF) {
			r.logger.Debug("Input closed", log.FieldState, state.String())
			fmt.Fprintln(r.out)
			r.println(MsgFarewell)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		tr := Step(state, draft, line)
		r.println(tr.Messages...)
		if err := r.apply(ctx, tr); err != nil {
			return err
		}

		r.logger.Debug("Menu transition", log.FieldState, tr.Next.String())
		state, draft = tr.Next, tr.Draft
	}
	return nil
}

// readLine returns the next input line without its line ending. Lines have no
// length limit. A final line without a newline is still returned; io.EOF is
// reported only once input is exhausted.
func (r *Runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *Runner) apply(ctx context.Context, tr Transition) error {
	switch tr.Effect {
	case EffectRecord:
		d := tr.Draft
		if _, err := r.actions.Record(ctx, d.Amount, d.Kind, d.Description); err != nil {
			return err
		}
		r.println(MsgRecorded)

	case EffectList:
		if err := r.actions.ListToday(ctx, r.out); err != nil {
			r.println(fmt.Sprintf("Erro ao listar movimentações: %v", err))
		}

	case EffectSend:
		r.println(r.actions.SendToday(ctx).Lines()...)
	}
	return nil
}

func (r *Runner) println(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
}
