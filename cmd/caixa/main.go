package main

import (
	"context"
	"os"

	"caixa/internal/cli"
	"caixa/internal/daybook"
	"caixa/internal/log"
	"caixa/internal/mailer"
	"caixa/internal/menu"
	"caixa/internal/services"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel)

	ctx := log.NewContext(context.Background(), logger)

	book := daybook.New(cfg.MovementsDir, daybook.WithLogger(logger))
	sender := mailer.New(cli.NewMailerConfig(cfg), cli.NewTransport(cfg), logger)
	publisher := cli.InitPublisher(logger, cfg)

	svc := services.NewCashService(book, sender, publisher, cfg.SendTimeout)

	logger.Info("Starting caixa",
		log.FieldOperation, log.OpStartup,
		log.FieldPath, book.Dir(),
		log.FieldProvider, cfg.MailProvider,
		"events", publisher != nil)

	runErr := menu.NewRunner(svc, os.Stdin, os.Stdout, logger).Run(ctx)

	if err := svc.Close(); err != nil {
		logger.Warn("Failed to close cash service",
			log.FieldOperation, log.OpShutdown, log.FieldError, err)
	}
	if runErr != nil {
		logger.Error("Unrecoverable error, exiting", log.FieldError, runErr)
		os.Exit(1)
	}
}
