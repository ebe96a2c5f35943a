package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/strikelab/commandstrike/pkg/config"
	"github.com/strikelab/commandstrike/pkg/modeladapter"
	"github.com/strikelab/commandstrike/pkg/ollama"
	"go.uber.org/zap"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: commandstrike [flags]\n\nLLM-backed assistant for CTF and security assessment work.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	configPath := flag.String("config", config.DefaultPath, "path to configuration file")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	modelName := flag.String("model", "", "model to use (skips the selection menu)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *modelName, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func run(configPath, modelName string, verbose bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(verbose || cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client := ollama.New(cfg.ClientConfig())
	client.Log = logger

	if cfg.AuthToken != "" {
		client.Auth = modeladapter.Auth{Key: cfg.AuthToken, Header: cfg.AuthHeaderName}
	}

	app := newApp(client, logger)

	return app.run(ctx, modelName)
}

// newLogger builds the process logger. Verbose mode uses the human-readable
// development encoder at debug level; otherwise logs go to stderr at warn so
// they do not interleave with the interaction loop.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}
