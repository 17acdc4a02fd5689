package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloud-ru/kredit-schedule-go/internal/collector"
	"github.com/cloud-ru/kredit-schedule-go/internal/metrics"
	"github.com/cloud-ru/kredit-schedule-go/pkg/utils"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// CommandStart приветствие
	CommandStart = "/start"
	// CommandKredit начинает новый расчет
	CommandKredit = "/kredit"
)

// Reply ответ на сообщение пользователя
type Reply struct {
	SessionID string          `json:"session_id,omitempty"`
	State     collector.State `json:"state"`
	Text      string          `json:"reply"`
	Error     string          `json:"error,omitempty"`
	ErrorKind string          `json:"error_kind,omitempty"`
	Result    *Result         `json:"result,omitempty"`
}

// StartText текст приветствия
func StartText() string {
	return fmt.Sprintf("Для расчета кредита отправьте команду %s.", CommandKredit)
}

// PrincipalPrompt просьба ввести сумму
func PrincipalPrompt() string {
	return "Введите сумму кредита (сум):"
}

func (s *Service) termPrompt() string {
	limits := s.cfg.Limits()
	return fmt.Sprintf("Теперь введите срок кредита в месяцах (например: 12).\nОт %d до %d месяцев",
		limits.MinMonths, limits.MaxMonths)
}

func (s *Service) rejection(step collector.State, err error) string {
	limits := s.cfg.Limits()
	kind := ErrorKind(err)
	switch {
	case step == collector.AwaitingPrincipal && kind == "range":
		return fmt.Sprintf("Сумма кредита должна быть от %s до %s сум.",
			utils.FormatAmount(limits.MinPrincipal), utils.FormatAmount(limits.MaxPrincipal))
	case step == collector.AwaitingPrincipal:
		return "Пожалуйста, введите только число! Например: 12000000"
	case kind == "range":
		return fmt.Sprintf("Срок кредита должен быть от %d до %d месяцев.", limits.MinMonths, limits.MaxMonths)
	default:
		return "Пожалуйста, введите корректное целое число!"
	}
}

// StartSession начинает новый сбор параметров со свежим сборщиком
func (s *Service) StartSession(ctx context.Context) (Reply, error) {
	id, c, err := s.sessions.Start(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("start session: %w", err)
	}
	s.logger.DebugContext(ctx, "session started", "session_id", id)
	return Reply{SessionID: id, State: c.State(), Text: PrincipalPrompt()}, nil
}

// DiscardSession удаляет незавершенную сессию
func (s *Service) DiscardSession(ctx context.Context, id string) error {
	return s.sessions.Discard(ctx, id)
}

// HandleMessage применяет сообщение пользователя к его сессии.
// Ошибки проверки ввода возвращаются в Reply, сессия при этом остается на том же шаге.
func (s *Service) HandleMessage(ctx context.Context, id, text string) (Reply, error) {
	ctx, span := s.tracer.Start(ctx, "handle_message")
	defer span.End()
	span.SetAttributes(attribute.String("session_id", id))

	command := strings.TrimSpace(text)
	if command == CommandKredit {
		// Повторная команда начинает расчет заново
		if err := s.sessions.Discard(ctx, id); err != nil {
			return Reply{}, err
		}
		return s.StartSession(ctx)
	}

	c, err := s.sessions.Get(ctx, id)
	if err != nil {
		return Reply{}, err
	}
	step := c.State()

	if command == CommandStart {
		return Reply{SessionID: id, State: step, Text: StartText()}, nil
	}

	req, err := c.Submit(text)
	if err != nil {
		kind := ErrorKind(err)
		if kind == "" {
			return Reply{}, err
		}
		metrics.CollectorInputs.WithLabelValues(step.String(), kind+"_error").Inc()
		span.SetAttributes(attribute.String("error", "validation_error"))
		s.logger.InfoContext(ctx, "input rejected", "session_id", id, "step", step.String(), "error", err)

		if err := s.sessions.Put(ctx, id, c); err != nil {
			return Reply{}, err
		}
		return Reply{
			SessionID: id,
			State:     c.State(),
			Text:      s.rejection(step, err),
			Error:     err.Error(),
			ErrorKind: kind,
		}, nil
	}
	metrics.CollectorInputs.WithLabelValues(step.String(), "accepted").Inc()

	if req == nil {
		if err := s.sessions.Put(ctx, id, c); err != nil {
			return Reply{}, err
		}
		return Reply{SessionID: id, State: c.State(), Text: s.termPrompt()}, nil
	}

	// Сессия удаляется только после успешного расчета, до этого в хранилище
	// остается предыдущий шаг и срок можно отправить повторно
	result, err := s.generate(ctx, *req, s.cfg.AnnualRatePercent)
	if err != nil {
		return Reply{}, err
	}
	if err := s.sessions.Put(ctx, id, c); err != nil {
		return Reply{}, err
	}
	return Reply{
		SessionID: id,
		State:     collector.Complete,
		Text:      result.Annuity.Caption + "\n\n" + result.Differential.Caption,
		Result:    result,
	}, nil
}
