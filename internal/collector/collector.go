// Package collector собирает параметры кредита в два шага: сначала сумму,
// затем срок. Каждый экземпляр принадлежит одной сессии и не используется повторно.
package collector

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/kredit-schedule-go/internal/validators"
	"github.com/shopspring/decimal"
)

// State шаг сбора параметров
type State int

const (
	AwaitingPrincipal State = iota
	AwaitingTerm
	Complete
)

func (s State) String() string {
	switch s {
	case AwaitingPrincipal:
		return "awaiting_principal"
	case AwaitingTerm:
		return "awaiting_term"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText кодирует состояние строкой
func (s State) MarshalText() ([]byte, error) {
	switch s {
	case AwaitingPrincipal, AwaitingTerm, Complete:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("unknown collector state %d", int(s))
}

// UnmarshalText разбирает строковое имя состояния
func (s *State) UnmarshalText(text []byte) error {
	for _, candidate := range []State{AwaitingPrincipal, AwaitingTerm, Complete} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown collector state %q", text)
}

var (
	// ErrWrongState ввод не ожидается на текущем шаге
	ErrWrongState = errors.New("input is not expected in the current state")
	// ErrCompleted сбор уже завершен, нужен новый экземпляр
	ErrCompleted = errors.New("collection is already complete")
)

// LoanRequest собранные и проверенные параметры кредита
type LoanRequest struct {
	Principal  decimal.Decimal `json:"principal"`
	TermMonths int             `json:"term_months"`
}

// Snapshot состояние сборщика, пригодное для сохранения между сообщениями
type Snapshot struct {
	State      State           `json:"state"`
	Principal  decimal.Decimal `json:"principal"`
	TermMonths int             `json:"term_months,omitempty"`
}

// Step чистая функция перехода: применяет ввод к снимку и возвращает новый снимок.
// При ошибке возвращается исходный снимок без изменений.
func Step(limits validators.Limits, s Snapshot, text string) (Snapshot, error) {
	switch s.State {
	case AwaitingPrincipal:
		principal, err := validators.ParseAmount("principal", text)
		if err != nil {
			return s, err
		}
		if err := validators.CheckPrincipal(limits, principal); err != nil {
			return s, err
		}
		return Snapshot{State: AwaitingTerm, Principal: principal}, nil

	case AwaitingTerm:
		months, err := validators.ParseTerm("term_months", text)
		if err != nil {
			return s, err
		}
		if err := validators.CheckMonths(limits, months); err != nil {
			return s, err
		}
		return Snapshot{State: Complete, Principal: s.Principal, TermMonths: months}, nil

	case Complete:
		return s, ErrCompleted
	}
	return s, fmt.Errorf("%w: %s", ErrWrongState, s.State)
}

// Collector пошаговый сборщик параметров одной заявки
type Collector struct {
	limits validators.Limits
	snap   Snapshot
}

// New создает сборщик в состоянии AwaitingPrincipal
func New(limits validators.Limits) *Collector {
	return &Collector{limits: limits, snap: Snapshot{State: AwaitingPrincipal}}
}

// Restore восстанавливает сборщик из снимка
func Restore(limits validators.Limits, s Snapshot) (*Collector, error) {
	switch s.State {
	case AwaitingPrincipal:
		s = Snapshot{State: AwaitingPrincipal}
	case AwaitingTerm:
		if err := validators.CheckPrincipal(limits, s.Principal); err != nil {
			return nil, fmt.Errorf("restore collector: %w", err)
		}
		s.TermMonths = 0
	case Complete:
		return nil, fmt.Errorf("restore collector: %w", ErrCompleted)
	default:
		return nil, fmt.Errorf("restore collector: %w: %s", ErrWrongState, s.State)
	}
	return &Collector{limits: limits, snap: s}, nil
}

// State возвращает текущий шаг
func (c *Collector) State() State {
	return c.snap.State
}

// Snapshot возвращает копию текущего состояния
func (c *Collector) Snapshot() Snapshot {
	return c.snap
}

// SubmitPrincipal принимает текст с суммой кредита
func (c *Collector) SubmitPrincipal(text string) error {
	if c.snap.State != AwaitingPrincipal {
		return c.unexpected()
	}
	next, err := Step(c.limits, c.snap, text)
	if err != nil {
		return err
	}
	c.snap = next
	return nil
}

// SubmitTerm принимает текст со сроком и возвращает готовую заявку
func (c *Collector) SubmitTerm(text string) (LoanRequest, error) {
	if c.snap.State != AwaitingTerm {
		return LoanRequest{}, c.unexpected()
	}
	next, err := Step(c.limits, c.snap, text)
	if err != nil {
		return LoanRequest{}, err
	}
	c.snap = next
	return LoanRequest{Principal: next.Principal, TermMonths: next.TermMonths}, nil
}

// Submit направляет ввод в шаг, соответствующий текущему состоянию.
// Заявка возвращается только при переходе в Complete.
func (c *Collector) Submit(text string) (*LoanRequest, error) {
	switch c.snap.State {
	case AwaitingPrincipal:
		return nil, c.SubmitPrincipal(text)
	case AwaitingTerm:
		req, err := c.SubmitTerm(text)
		if err != nil {
			return nil, err
		}
		return &req, nil
	}
	return nil, c.unexpected()
}

func (c *Collector) unexpected() error {
	if c.snap.State == Complete {
		return ErrCompleted
	}
	return fmt.Errorf("%w: %s", ErrWrongState, c.snap.State)
}
