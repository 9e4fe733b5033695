package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"primehunt/internal/cli/config"
	"primehunt/internal/cli/prompt"
	"primehunt/internal/common/console"
	"primehunt/internal/hunt/reporter"
	"primehunt/internal/hunt/service"
	appErr "primehunt/pkg/errors"
	"primehunt/pkg/utils/logger"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", config.DefaultPath, "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		return appErr.GetCode(err).ExitCode()
	}

	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		return appErr.LoggerInitFailed.ExitCode()
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()
	logger.Debug(ctx, "config loaded", zap.String("path", *configPath), zap.Stringer("config", cfg))

	out := color.Output
	palette := console.NewPalette(cfg.ColorEnabled())

	if err := service.WriteBanner(out, palette); err != nil {
		return fail(ctx, os.Stderr, err)
	}

	reader, err := prompt.NewReadlineReader(os.Stdin, out)
	if err != nil {
		return fail(ctx, os.Stderr, err)
	}
	params, err := prompt.New(reader, out, palette).Params(ctx)
	_ = reader.Close()
	if err != nil {
		return fail(ctx, os.Stderr, err)
	}

	if err := service.WriteAnnouncement(out, params); err != nil {
		return fail(ctx, os.Stderr, err)
	}

	svc := service.NewService(service.Config{
		PollInterval: cfg.PollInterval,
		Renderer:     reporter.NewConsoleRenderer(out),
	})
	report, err := svc.Hunt(ctx, params)
	if err != nil {
		return fail(ctx, os.Stderr, err)
	}

	if err := service.WriteReport(out, palette, report); err != nil {
		return fail(ctx, os.Stderr, err)
	}
	return appErr.Success.ExitCode()
}

// fail prints err once to w and maps it to the process exit status. The log
// entry carries the stack and stays below the default level, so the terminal
// shows the plain message only.
func fail(ctx context.Context, w io.Writer, err error) int {
	fields := []zap.Field{zap.Error(err)}
	if e, ok := err.(*appErr.Error); ok {
		fields = append(fields, zap.Int("code", int(e.Code)), zap.String("stack", e.Stack))
	}
	logger.Info(ctx, "primehunt aborted", fields...)
	fmt.Fprintf(w, "\n%v\n", err)
	return appErr.GetCode(err).ExitCode()
}
