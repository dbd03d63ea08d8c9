package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/promotrack/internal/cli"
	"github.com/alexanderramin/promotrack/internal/config"
	"github.com/alexanderramin/promotrack/internal/db"
	"github.com/alexanderramin/promotrack/internal/repository"
	"github.com/alexanderramin/promotrack/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	facultySvc := service.NewFacultyService(
		repository.NewSQLiteFacultyRepo(database),
		repository.NewSQLiteAchievementRepo(database),
		db.NewSQLiteUnitOfWork(database),
		observers...,
	)

	app := &cli.App{
		Faculty: facultySvc,
		Addr:    cfg.Addr,
		IsInteractive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
