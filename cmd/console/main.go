package main

import (
	"context"
	"flag"
	"os"

	"github.com/chzyer/readline"

	"github.com/yigit/coursemanager/internal/bootstrap"
	"github.com/yigit/coursemanager/internal/console"
	"github.com/yigit/coursemanager/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file (default configs/config.yaml)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logger.Error().Err(err).Msg("Console exited with error")
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx := context.Background()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	infra, err := bootstrap.SetupInfrastructure(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer infra.Close(lgr)

	deps := bootstrap.BuildDependencies(cfg, infra, nil, lgr)
	if err := bootstrap.SeedIfEnabled(ctx, cfg, infra, deps); err != nil {
		lgr.Warn().Err(err).Msg("Failed to create demo data")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	return console.New(rl, rl.Stdout(), infra.Store, console.Services{
		Students:    deps.StudentService,
		Courses:     deps.CourseService,
		Enrollments: deps.EnrollmentService,
		Reports:     deps.ReportService,
	}, deps.Clock).Run(ctx)
}
