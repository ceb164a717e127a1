// Package menu drives the operator console. Step is a pure transition
// function; Runner feeds it console lines and performs the effects.
package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"caixa/internal/core"
)

type State int

const (
	MainMenu State = iota
	AwaitingAmount
	AwaitingKind
	AwaitingDescription
	Exited
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "main_menu"
	case AwaitingAmount:
		return "awaiting_amount"
	case AwaitingKind:
		return "awaiting_kind"
	case AwaitingDescription:
		return "awaiting_description"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Effect int

const (
	EffectNone Effect = iota
	EffectRecord
	EffectList
	EffectSend
	EffectExit
)

// Draft collects the fields of a movement being entered.
type Draft struct {
	Amount      decimal.Decimal
	Kind        core.Kind
	Description string
}

type Transition struct {
	Next     State
	Draft    Draft
	Messages []string
	Effect   Effect
}

const (
	OptionRecord = "1"
	OptionList   = "2"
	OptionSend   = "3"
	OptionExit   = "4"
)

const (
	MsgInvalidOption    = "Opção inválida. Tente novamente."
	MsgInvalidAmount    = "Valor inválido. Por favor, digite um número."
	MsgInvalidKind      = "Opção inválida. Por favor, digite 'E' para Entrada ou 'S' para Saída."
	MsgEmptyDescription = "Descrição não pode ser vazia. Operação cancelada."
	MsgRecorded         = "Movimento registrado com sucesso!"
	MsgFarewell         = "Saindo do sistema. Até mais!"
)

const mainMenu = `
--- Sistema de Registro de Caixa ---
1. Registrar nova movimentação
2. Listar movimentações do dia
3. Enviar registro do dia por e-mail
4. Sair
Escolha uma opção: `

// Prompt is the text shown while waiting for input in state s.
func Prompt(s State) string {
	switch s {
	case MainMenu:
		return mainMenu
	case AwaitingAmount:
		return "Digite o valor (ex: 150.75): R$"
	case AwaitingKind:
		return "Digite o tipo (E para Entrada / S para Saída): "
	case AwaitingDescription:
		return "Digite uma pequena descrição: "
	default:
		return ""
	}
}

// Step computes the transition for one line of operator input.
func Step(state State, draft Draft, input string) Transition {
	switch state {
	case MainMenu:
		return stepMainMenu(strings.TrimSpace(input))

	case AwaitingAmount:
		amount, err := core.ParseAmount(input)
		if err != nil {
			return Transition{Next: MainMenu, Messages: []string{MsgInvalidAmount}}
		}
		return Transition{Next: AwaitingKind, Draft: Draft{Amount: amount}}

	case AwaitingKind:
		kind, err := core.ParseKind(input)
		if err != nil {
			return Transition{Next: AwaitingKind, Draft: draft, Messages: []string{MsgInvalidKind}}
		}
		draft.Kind = kind
		return Transition{Next: AwaitingDescription, Draft: draft}

	case AwaitingDescription:
		description := strings.TrimSpace(input)
		if description == "" {
			return Transition{Next: MainMenu, Messages: []string{MsgEmptyDescription}}
		}
		draft.Description = description
		return Transition{Next: MainMenu, Draft: draft, Effect: EffectRecord}

	default:
		return Transition{Next: Exited}
	}
}

func stepMainMenu(choice string) Transition {
	switch choice {
	case OptionRecord:
		return Transition{Next: AwaitingAmount}
	case OptionList:
		return Transition{Next: MainMenu, Effect: EffectList}
	case OptionSend:
		return Transition{Next: MainMenu, Effect: EffectSend}
	case OptionExit:
		return Transition{Next: Exited, Messages: []string{MsgFarewell}, Effect: EffectExit}
	default:
		return Transition{Next: MainMenu, Messages: []string{MsgInvalidOption}}
	}
}
