package service

import (
	"context"
	"testing"
	"time"

	"github.com/cloud-ru/kredit-schedule-go/internal/calculations"
	"github.com/cloud-ru/kredit-schedule-go/internal/collector"
	"github.com/cloud-ru/kredit-schedule-go/internal/config"
	"github.com/cloud-ru/kredit-schedule-go/internal/logging"
	"github.com/cloud-ru/kredit-schedule-go/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func testConfig() *config.Config {
	return &config.Config{
		AnnualRatePercent: calculations.DefaultAnnualRatePercent,
		MinPrincipal:      3_000_000,
		MaxPrincipal:      300_000_000,
		MinMonths:         3,
		MaxMonths:         48,
		MaxRate:           200,
		SessionTTL:        time.Hour,
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := testConfig()
	sessions := session.NewManager(session.NewMemoryStore(cfg.SessionTTL), cfg.Limits())
	return New(cfg, sessions, noop.NewTracerProvider().Tracer("test"), logging.Discard())
}

func TestCalculate(t *testing.T) {
	svc := newTestService(t)
	zero := 0.0

	tests := []struct {
		name        string
		principal   float64
		months      int
		rate        *float64
		wantKind    string
		checkResult func(*testing.T, *Result)
	}{
		{
			name:      "default rate",
			principal: 10_000_000,
			months:    12,
			checkResult: func(t *testing.T, r *Result) {
				assert.Equal(t, calculations.DefaultAnnualRatePercent, r.AnnualRatePercent)
				assert.Equal(t, "1 107 143", r.Annuity.Table.Rows[0][3])
				assert.Equal(t, calculations.Differential, r.CheaperConvention)
			},
		},
		{
			name:      "zero rate",
			principal: 12_000_000,
			months:    12,
			rate:      &zero,
			checkResult: func(t *testing.T, r *Result) {
				for _, row := range r.Annuity.Table.Rows {
					assert.Equal(t, "1 000 000", row[3])
					assert.Equal(t, "0", row[1])
				}
				assert.True(t, r.Savings.IsZero())
			},
		},
		{name: "principal too small", principal: 2_999_999, months: 12, wantKind: "range"},
		{name: "term too long", principal: 10_000_000, months: 49, wantKind: "range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Calculate(context.Background(), tt.principal, tt.months, tt.rate)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, ErrorKind(err))
				return
			}
			require.NoError(t, err)
			tt.checkResult(t, result)
		})
	}
}

func TestConversation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, collector.AwaitingPrincipal, start.State)
	assert.Equal(t, PrincipalPrompt(), start.Text)
	id := start.SessionID

	steps := []struct {
		input     string
		wantState collector.State
		wantKind  string
		wantText  string
	}{
		{input: "/start", wantState: collector.AwaitingPrincipal, wantText: StartText()},
		{input: "много", wantState: collector.AwaitingPrincipal, wantKind: "parse",
			wantText: "Пожалуйста, введите только число! Например: 12000000"},
		{input: "2 999 999", wantState: collector.AwaitingPrincipal, wantKind: "range",
			wantText: "Сумма кредита должна быть от 3 000 000 до 300 000 000 сум."},
		{input: "10 000 000", wantState: collector.AwaitingTerm,
			wantText: "Теперь введите срок кредита в месяцах (например: 12).\nОт 3 до 48 месяцев"},
		{input: "год", wantState: collector.AwaitingTerm, wantKind: "parse"},
		{input: "49", wantState: collector.AwaitingTerm, wantKind: "range",
			wantText: "Срок кредита должен быть от 3 до 48 месяцев."},
	}

	for _, step := range steps {
		reply, err := svc.HandleMessage(ctx, id, step.input)
		require.NoError(t, err, "input %q", step.input)
		assert.Equal(t, step.wantState, reply.State, "input %q", step.input)
		assert.Equal(t, step.wantKind, reply.ErrorKind, "input %q", step.input)
		if step.wantText != "" {
			assert.Equal(t, step.wantText, reply.Text, "input %q", step.input)
		}
	}

	reply, err := svc.HandleMessage(ctx, id, "12")
	require.NoError(t, err)
	assert.Equal(t, collector.Complete, reply.State)
	require.NotNil(t, reply.Result)
	assert.Equal(t, 12, reply.Result.Request.TermMonths)
	assert.Contains(t, reply.Text, "Всего к оплате: 13 285 712 сум")
	assert.Contains(t, reply.Text, "Всего к оплате: 13 033 333 сум")

	// Завершенная сессия удаляется
	_, err = svc.HandleMessage(ctx, id, "12")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestConversationRestart(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.HandleMessage(ctx, first.SessionID, "5000000")
	require.NoError(t, err)

	restarted, err := svc.HandleMessage(ctx, first.SessionID, "/kredit")
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, restarted.SessionID)
	assert.Equal(t, collector.AwaitingPrincipal, restarted.State)

	_, err = svc.HandleMessage(ctx, first.SessionID, "12")
	assert.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, svc.DiscardSession(ctx, restarted.SessionID))
	_, err = svc.HandleMessage(ctx, restarted.SessionID, "5000000")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestConversationKeepsSessionWhenGenerationFails(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	// Ставка в обход Validate, генератор ее отвергает
	cfg.AnnualRatePercent = -1
	sessions := session.NewManager(session.NewMemoryStore(cfg.SessionTTL), cfg.Limits())
	svc := New(cfg, sessions, noop.NewTracerProvider().Tracer("test"), logging.Discard())

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := start.SessionID

	_, err = svc.HandleMessage(ctx, id, "10 000 000")
	require.NoError(t, err)

	_, err = svc.HandleMessage(ctx, id, "12")
	var inputErr *calculations.InputError
	require.ErrorAs(t, err, &inputErr)

	restored, err := sessions.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, collector.AwaitingTerm, restored.State())

	cfg.AnnualRatePercent = calculations.DefaultAnnualRatePercent
	reply, err := svc.HandleMessage(ctx, id, "12")
	require.NoError(t, err)
	assert.Equal(t, collector.Complete, reply.State)
	require.NotNil(t, reply.Result)

	_, err = sessions.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrNotFound)
}
