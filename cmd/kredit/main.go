// Команда kredit ведет диалог расчета кредита в терминале: строки из stdin
// передаются в тот же сервис, что и HTTP адаптер.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cloud-ru/kredit-schedule-go/internal/config"
	"github.com/cloud-ru/kredit-schedule-go/internal/logging"
	"github.com/cloud-ru/kredit-schedule-go/internal/report"
	"github.com/cloud-ru/kredit-schedule-go/internal/service"
	"github.com/cloud-ru/kredit-schedule-go/internal/session"
	"go.opentelemetry.io/otel/trace/noop"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kredit: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Init(cfg.LogLevel, cfg.LogFormat)

	sessions := session.NewManager(session.NewMemoryStore(cfg.SessionTTL), cfg.Limits())
	svc := service.New(cfg, sessions, noop.NewTracerProvider().Tracer("kredit"), logger)

	if err := converse(context.Background(), svc, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "kredit: %v\n", err)
		os.Exit(1)
	}
}

func converse(ctx context.Context, svc *service.Service, in io.Reader, out io.Writer) error {
	reply, err := svc.StartSession(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, service.StartText())
	fmt.Fprintln(out, reply.Text)
	id := reply.SessionID

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		reply, err := svc.HandleMessage(ctx, id, scanner.Text())
		if err != nil {
			return err
		}
		id = reply.SessionID

		if reply.Result == nil {
			fmt.Fprintln(out, reply.Text)
			continue
		}

		for _, r := range []report.Report{reply.Result.Annuity, reply.Result.Differential} {
			fmt.Fprintln(out)
			if err := report.WriteText(out, r.Table); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, r.Caption)
		}
		return nil
	}
	return scanner.Err()
}
