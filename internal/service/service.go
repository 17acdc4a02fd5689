// Package service связывает сбор параметров, построение графиков и подготовку
// отчетов, добавляя к ним трейсинг, метрики и логирование.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cloud-ru/kredit-schedule-go/internal/calculations"
	"github.com/cloud-ru/kredit-schedule-go/internal/collector"
	"github.com/cloud-ru/kredit-schedule-go/internal/config"
	"github.com/cloud-ru/kredit-schedule-go/internal/metrics"
	"github.com/cloud-ru/kredit-schedule-go/internal/report"
	"github.com/cloud-ru/kredit-schedule-go/internal/session"
	"github.com/cloud-ru/kredit-schedule-go/internal/validators"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Result итог расчета по одной заявке: оба графика и их сравнение
type Result struct {
	Request           collector.LoanRequest   `json:"request"`
	AnnualRatePercent float64                 `json:"annual_rate_percent"`
	Annuity           report.Report           `json:"annuity"`
	Differential      report.Report           `json:"differential"`
	CheaperConvention calculations.Convention `json:"cheaper_convention,omitempty"`
	Savings           decimal.Decimal         `json:"savings"`
}

// Service обслуживает расчеты и диалоги
type Service struct {
	cfg      *config.Config
	sessions *session.Manager
	tracer   trace.Tracer
	logger   *slog.Logger
}

// New создает сервис
func New(cfg *config.Config, sessions *session.Manager, tracer trace.Tracer, logger *slog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		sessions: sessions,
		tracer:   tracer,
		logger:   logger,
	}
}

// ErrorKind классифицирует ошибку проверки ввода: "parse", "range" или ""
func ErrorKind(err error) string {
	var parseErr *validators.ParseError
	var rangeErr *validators.RangeError
	switch {
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &rangeErr):
		return "range"
	}
	return ""
}

// Validate проверяет параметры расчета по границам конфигурации
func (s *Service) Validate(principal float64, months int, annualRatePercent float64) error {
	limits := s.cfg.Limits()
	if err := validators.ValidatePositiveNumber("principal", principal, limits.MinPrincipal, limits.MaxPrincipal); err != nil {
		return err
	}
	if err := validators.CheckMonths(limits, months); err != nil {
		return err
	}
	return validators.CheckRate(limits, annualRatePercent)
}

// Calculate проверяет параметры и строит оба графика.
// Если annualRatePercent равен nil, используется ставка из конфигурации.
func (s *Service) Calculate(ctx context.Context, principal float64, months int, annualRatePercent *float64) (*Result, error) {
	rate := s.cfg.AnnualRatePercent
	if annualRatePercent != nil {
		rate = *annualRatePercent
	}

	ctx, span := s.tracer.Start(ctx, "calculate_schedules")
	defer span.End()

	span.SetAttributes(
		attribute.Float64("principal", principal),
		attribute.Int("months", months),
		attribute.Float64("annual_rate_percent", rate),
	)

	if err := s.Validate(principal, months, rate); err != nil {
		span.SetAttributes(attribute.String("error", "validation_error"))
		metrics.CalculationErrors.WithLabelValues("calculate", "validation").Inc()
		s.logger.InfoContext(ctx, "calculation rejected", "error", err)
		return nil, fmt.Errorf("неверные параметры: %w", err)
	}

	req := collector.LoanRequest{Principal: decimal.NewFromFloat(principal), TermMonths: months}
	return s.generate(ctx, req, rate)
}

func (s *Service) generate(ctx context.Context, req collector.LoanRequest, rate float64) (*Result, error) {
	principal := req.Principal.InexactFloat64()
	if rate == 0 {
		s.logger.DebugContext(ctx, "zero rate, annuity degenerates to level split",
			"principal", principal, "months", req.TermMonths)
	}

	comparison, err := calculations.CompareLoans(principal, req.TermMonths, rate)
	if err != nil {
		span := trace.SpanFromContext(ctx)
		span.SetAttributes(attribute.String("error", "calculation_error"))
		metrics.ScheduleGenerations.WithLabelValues("both", "error").Inc()
		metrics.CalculationErrors.WithLabelValues("calculate", "calculation").Inc()
		s.logger.ErrorContext(ctx, "schedule generation failed",
			"principal", principal, "months", req.TermMonths, "annual_rate_percent", rate, "error", err)
		return nil, fmt.Errorf("ошибка при выполнении расчета: %w", err)
	}

	metrics.ScheduleGenerations.WithLabelValues(string(calculations.Annuity), "success").Inc()
	metrics.ScheduleGenerations.WithLabelValues(string(calculations.Differential), "success").Inc()

	result := &Result{
		Request:           req,
		AnnualRatePercent: rate,
		Annuity:           report.Assemble(comparison.Annuity),
		Differential:      report.Assemble(comparison.Differential),
		CheaperConvention: comparison.CheaperConvention,
		Savings:           comparison.Savings,
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Bool("success", true),
		attribute.String("annuity_total_payment", result.Annuity.Summary.TotalPayment.String()),
		attribute.String("differential_total_payment", result.Differential.Summary.TotalPayment.String()),
	)
	s.logger.InfoContext(ctx, "schedules generated",
		"principal", principal, "months", req.TermMonths, "cheaper", result.CheaperConvention)

	return result, nil
}
