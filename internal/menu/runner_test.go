package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caixa/internal/core"
	"caixa/internal/daybook"
	"caixa/internal/mailer"
)

type recordCall struct {
	amount      string
	kind        core.Kind
	description string
}

type fakeActions struct {
	records   []recordCall
	lists     int
	sends     int
	recordErr error
	listErr   error
	result    mailer.Result
}

func (f *fakeActions) Record(_ context.Context, amount decimal.Decimal, kind core.Kind, description string) (core.Movement, error) {
	if f.recordErr != nil {
		return core.Movement{}, f.recordErr
	}
	f.records = append(f.records, recordCall{core.FormatAmount(amount), kind, description})
	return core.Movement{Amount: amount, Kind: kind, Description: description}, nil
}

func (f *fakeActions) ListToday(_ context.Context, w io.Writer) error {
	f.lists++
	if f.listErr != nil {
		return f.listErr
	}
	_, err := io.WriteString(w, "LISTAGEM\n")
	return err
}

func (f *fakeActions) SendToday(context.Context) mailer.Result {
	f.sends++
	return f.result
}

func run(t *testing.T, actions Actions, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewRunner(actions, strings.NewReader(input), &out, nil).Run(context.Background())
	return out.String(), err
}

func TestRunRecordFlow(t *testing.T) {
	actions := &fakeActions{}
	out, err := run(t, actions, "1\n150.75\nx\nE\nvenda balcão\n4\n")
	require.NoError(t, err)

	require.Len(t, actions.records, 1)
	assert.Equal(t, recordCall{"150.75", core.Inflow, "venda balcão"}, actions.records[0])
	assert.Equal(t, 1, strings.Count(out, MsgInvalidKind))
	assert.Contains(t, out, MsgRecorded)
	assert.True(t, strings.HasSuffix(out, MsgFarewell+"\n"))
}

func TestRunInvalidAmountReturnsToMenu(t *testing.T) {
	actions := &fakeActions{}
	out, err := run(t, actions, "1\nabc\n2\n4\n")
	require.NoError(t, err)

	assert.Empty(t, actions.records)
	assert.Equal(t, 1, actions.lists)
	assert.Contains(t, out, MsgInvalidAmount)
	assert.Contains(t, out, "LISTAGEM")
}

func TestRunEmptyDescriptionDoesNotRecord(t *testing.T) {
	actions := &fakeActions{}
	out, err := run(t, actions, "1\n10\ns\n   \n4\n")
	require.NoError(t, err)

	assert.Empty(t, actions.records)
	assert.Contains(t, out, MsgEmptyDescription)
	assert.NotContains(t, out, MsgRecorded)
}

func TestRunInvalidOption(t *testing.T) {
	actions := &fakeActions{}
	out, err := run(t, actions, "9\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, MsgInvalidOption)
	assert.Equal(t, 2, strings.Count(out, "Escolha uma opção: "))
}

func TestRunSendPrintsResult(t *testing.T) {
	actions := &fakeActions{result: mailer.Result{Status: mailer.StatusConfigError}}
	out, err := run(t, actions, "3\n4\n")
	require.NoError(t, err)

	assert.Equal(t, 1, actions.sends)
	assert.Contains(t, out, "credenciais de e-mail")
	assert.Contains(t, out, MsgFarewell, "a failed send must not stop the menu")
}

func TestRunListErrorIsNotFatal(t *testing.T) {
	actions := &fakeActions{listErr: errors.New("permission denied")}
	out, err := run(t, actions, "2\n4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Erro ao listar movimentações: permission denied")
}

func TestRunRecordErrorIsFatal(t *testing.T) {
	actions := &fakeActions{recordErr: errors.New("disk full")}
	_, err := run(t, actions, "1\n10\ne\nvenda\n2\n4\n")
	require.EqualError(t, err, "disk full")
	assert.Zero(t, actions.lists, "loop must stop at the failed record")
}

func TestRunEndOfInputExits(t *testing.T) {
	actions := &fakeActions{}
	out, err := run(t, actions, "1\n10\n")
	require.NoError(t, err)
	assert.Empty(t, actions.records)
	assert.True(t, strings.HasSuffix(out, MsgFarewell+"\n"))
}

func TestRunAcceptsLongDescription(t *testing.T) {
	actions := &fakeActions{}
	long := strings.Repeat("a", 70*1024)
	out, err := run(t, actions, "1\n10\ne\n"+long+"\n4\n")
	require.NoError(t, err)

	require.Len(t, actions.records, 1)
	assert.Len(t, actions.records[0].description, len(long))
	assert.Contains(t, out, MsgRecorded)
	assert.True(t, strings.HasSuffix(out, MsgFarewell+"\n"))
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	actions := &fakeActions{}
	out, err := run(t, actions, "2\r\n4")
	require.NoError(t, err)

	assert.Equal(t, 1, actions.lists)
	assert.True(t, strings.HasSuffix(out, MsgFarewell+"\n"))
	assert.NotContains(t, out, MsgInvalidOption)
}

// Drives the real day book through the menu: two records, then a listing.
func TestRunWithDaybook(t *testing.T) {
	at := time.Date(2025, 3, 14, 10, 30, 0, 0, time.Local)
	book := daybook.New(filepath.Join(t.TempDir(), "movimentacoes"), daybook.WithClock(func() time.Time { return at }))
	actions := &bookActions{book: book}

	out, err := run(t, actions, "2\n1\n150.75\ne\nvenda balcão\n1\n-20\nS\nestorno\n2\n4\n")
	require.NoError(t, err)

	assert.Contains(t, out, daybook.EmptyNotice)
	assert.Contains(t, out, "Valor: R$150.75, Tipo: Entrada, Descrição: venda balcão")
	assert.Contains(t, out, "Valor: R$-20.00, Tipo: Saída, Descrição: estorno")
	assert.Less(t, strings.Index(out, "venda balcão\n"), strings.Index(out, "estorno\n"))
}

type bookActions struct {
	book *daybook.Book
}

func (b *bookActions) Record(_ context.Context, amount decimal.Decimal, kind core.Kind, description string) (core.Movement, error) {
	return b.book.Record(amount, kind, description)
}

func (b *bookActions) ListToday(_ context.Context, w io.Writer) error {
	return b.book.ListToday(w)
}

func (b *bookActions) SendToday(context.Context) mailer.Result {
	return mailer.Result{}
}
