package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jrammler/userdesk/internal/client/users"
	"github.com/jrammler/userdesk/internal/config"
	"github.com/jrammler/userdesk/internal/controller/web"
	"github.com/jrammler/userdesk/internal/observability"
	"github.com/jrammler/userdesk/internal/service"
	"github.com/jrammler/userdesk/internal/service/auth"
	"github.com/jrammler/userdesk/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) <= 1 {
		usageExit()
	}
	cfg := config.Load()
	// stdout is reserved for command output
	slog.SetDefault(observability.NewLogger(os.Stderr, cfg.Env))

	args := os.Args[2:]
	ctx := context.Background()
	commands := &userCommands{out: os.Stdout}
	var err error
	switch os.Args[1] {
	case "serve":
		if len(args) > 0 {
			cfg.Addr = args[0]
		}
		if len(args) > 1 {
			cfg.ConfigPath = args[1]
		}
		serve(cfg)
		return
	case "hash-password":
		hashPassword()
		return
	case "list-users":
		commands.users = newUsersClient(cfg, nil)
		err = commands.list(ctx)
	case "get-user":
		commands.users = newUsersClient(cfg, nil)
		err = commands.get(ctx, args)
	case "delete-user":
		commands.users = newUsersClient(cfg, nil)
		err = commands.delete(ctx, args)
	case "create-user":
		commands.users = newUsersClient(cfg, nil)
		err = commands.create(ctx, args, func() (string, error) {
			defer fmt.Fprintln(os.Stderr)
			return readPassword("Enter password for new user: ")
		})
	default:
		usageExit()
	}
	if errors.Is(err, UsageError) {
		usageExit()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func usageExit() {
	fmt.Fprintf(os.Stderr, "Usage: %s [serve [addr] [config-file] | hash-password | list-users | get-user <id> | delete-user <id> | create-user <email> [role]]\n", os.Args[0])
	os.Exit(1)
}

func newUsersClient(cfg config.Config, metrics *observability.Metrics) *users.Client {
	httpClient := &http.Client{Timeout: cfg.HttpTimeout}
	return users.NewClient(cfg.ApiURL, httpClient, metrics)
}

func serve(cfg config.Config) {
	sto, err := storage.NewJsonStorage(cfg.ConfigPath)
	if err != nil {
		slog.Error("Error initializing storage", "error", err)
		os.Exit(1)
	}

	// Set up signal handling for config reload
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGHUP)
	go func() {
		for sig := range signalChan {
			slog.Info("Received signal", "signal", sig)
			err := sto.LoadConfig()
			if err != nil {
				slog.Error("Failed to reload config. Continuing with previous config", "error", err)
			} else {
				slog.Info("Config reloaded successfully")
			}
		}
	}()

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	ser := &service.Service{
		UserService: newUsersClient(cfg, metrics),
		AuthService: auth.NewAuthService(sto),
	}

	server := web.NewServer(ser, reg)
	err = server.Serve(cfg.Addr)
	if err != nil {
		slog.Error("Error serving web interface", "error", err)
		os.Exit(1)
	}
}

func hashPassword() {
	password, err := readPassword("Enter password: ")
	if err != nil {
		slog.Error("Error reading password", "error", err)
		os.Exit(1)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("Error hashing password", "error", err)
		os.Exit(1)
	}

	fmt.Printf("\nHashed password: %s\n", string(hashedPassword))
}

// readPassword prompts on stderr so the prompt never mixes with output.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	return string(bytePassword), nil
}
