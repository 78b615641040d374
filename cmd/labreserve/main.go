// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

// labreserve is a terminal client for the laboratory reservation
// backend. It renders the booking inventory, the caller's own
// reservations, and the admin screens (inventory generation, booking
// and user deletion) as a TUI, and provides login/register/logout
// flows that manage the persisted session file.
//
// All stateful operations are delegated to the remote REST backend;
// this client owns only the on-screen reconciliation of fetched
// snapshots with user actions.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/labreserve/labreserve/lib/booking"
	"github.com/labreserve/labreserve/lib/bookingui"
	"github.com/labreserve/labreserve/lib/config"
	"github.com/labreserve/labreserve/lib/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var baseURL string
	var logOutput string
	var doLogin, doRegister, doLogout bool

	flagSet := pflag.NewFlagSet("labreserve", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to config file (default: $LABRESERVE_CONFIG)")
	flagSet.StringVar(&baseURL, "base-url", "", "reservation backend origin (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolVar(&doLogin, "login", false, "log in and save the session, then exit")
	flagSet.BoolVar(&doRegister, "register", false, "create an account, then exit")
	flagSet.BoolVar(&doLogout, "logout", false, "clear the saved session, then exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	if doLogout {
		if err := session.Clear(); err != nil {
			return err
		}
		fmt.Println("Session cleared.")
		return nil
	}

	configuration, err := loadConfig(configPath, baseURL)
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(logOutput, configuration.Log.Output)
	if err != nil {
		return err
	}
	defer closeLogger()

	if doLogin {
		return runLogin(configuration, logger)
	}
	if doRegister {
		return runRegister(configuration, logger)
	}
	return runTUI(configuration, logger)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `labreserve is a terminal client for laboratory reservations.

Browse availability, reserve and cancel laboratory slots, and (for
admins) manage inventory and users. The backend origin comes from the
config file or --base-url.

Usage:
  labreserve [flags]

Examples:
  # Log in and save the session
  labreserve --base-url https://reservas.example.edu --login

  # Open the TUI
  labreserve --config ~/.config/labreserve/config.yaml

  # Clear the saved session
  labreserve --logout

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// loadConfig resolves the configuration from the flag, the environment
// variable, or defaults, then applies flag overrides.
func loadConfig(configPath, baseURL string) (config.Config, error) {
	if configPath == "" {
		configPath = os.Getenv("LABRESERVE_CONFIG")
	}

	configuration := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		configuration = loaded
	}
	if baseURL != "" {
		configuration.Service.BaseURL = baseURL
	}

	if err := configuration.Validate(); err != nil {
		return config.Config{}, err
	}
	return configuration, nil
}

// newLogger builds the background logger. The flag wins over the
// config file; with neither, records are discarded (the TUI owns the
// terminal, so stderr is not an option).
func newLogger(flagOutput, configOutput string) (*slog.Logger, func(), error) {
	path := flagOutput
	if path == "" {
		path = configOutput
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { file.Close() }, nil
}

// newClient builds the transport client with the given token source.
func newClient(configuration config.Config, tokenSource booking.TokenSource, logger *slog.Logger) (*booking.Client, error) {
	return booking.NewClient(booking.Config{
		BaseURL:     configuration.Service.BaseURL,
		TokenSource: tokenSource,
		Timeout:     configuration.Service.Timeout(),
		Logger:      logger,
	})
}

// runTUI loads the session (absent session means logged-out browsing)
// and runs the bubbletea program.
func runTUI(configuration config.Config, logger *slog.Logger) error {
	currentSession, err := session.Load()
	if err != nil {
		return err
	}

	client, err := newClient(configuration, currentSession, logger)
	if err != nil {
		return err
	}

	params := bookingui.Params{
		Client:       client,
		ClearSession: session.Clear,
		Logger:       logger,
	}
	if currentSession != nil {
		params.UserID = currentSession.UserID
		params.LoggedIn = true
	}

	program := tea.NewProgram(bookingui.NewModel(params), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// runLogin prompts for credentials, authenticates, and saves the
// session file.
func runLogin(configuration config.Config, logger *slog.Logger) error {
	client, err := newClient(configuration, nil, logger)
	if err != nil {
		return err
	}

	userID, err := promptLine("User ID: ")
	if err != nil {
		return err
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	result, err := client.Login(context.Background(), booking.Credentials{
		UserID:   userID,
		Password: password,
	})
	if err != nil {
		if message := booking.ServerMessage(err); message != "" {
			return fmt.Errorf("login failed: %s", message)
		}
		return fmt.Errorf("login failed: %w", err)
	}

	if err := session.Save(&session.Session{UserID: userID, AccessToken: result.Token}); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s. Session saved to %s\n", userID, session.FilePath())
	return nil
}

// runRegister prompts for account details and creates the account.
// The password confirmation is checked locally; a mismatch never
// reaches the network.
func runRegister(configuration config.Config, logger *slog.Logger) error {
	client, err := newClient(configuration, nil, logger)
	if err != nil {
		return err
	}

	userID, err := promptLine("User ID: ")
	if err != nil {
		return err
	}
	email, err := promptLine("Email: ")
	if err != nil {
		return err
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirmation, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirmation {
		return fmt.Errorf("passwords do not match")
	}

	err = client.Register(context.Background(), booking.Registration{
		UserID:               userID,
		Email:                email,
		Password:             password,
		PasswordConfirmation: confirmation,
	})
	if err != nil {
		if message := booking.ServerMessage(err); message != "" {
			return fmt.Errorf("registration failed: %s", message)
		}
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("Account %s created. Log in with 'labreserve --login'.\n", userID)
	return nil
}

// promptLine reads one line of input from the terminal.
func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("input must not be empty")
	}
	return line, nil
}

// promptPassword reads a password without echoing it.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(password) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}
	return string(password), nil
}
