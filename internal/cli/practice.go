package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/prodsense/gym/internal/catalog"
	"github.com/prodsense/gym/internal/cli/tui"
	"github.com/prodsense/gym/internal/coach"
	"github.com/prodsense/gym/internal/config"
	"github.com/prodsense/gym/internal/gemini"
)

// NewPracticeCmd creates the practice command
func NewPracticeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Start an interactive practice session",
		Long: `Practice launches the full-screen wizard: choose a product and role,
pick a user flow, answer each question, and review your AI feedback.

Requires an interactive terminal. Set GEMINI_API_KEY (directly or via a
.env file) before submitting answers; without it every feedback call fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunPractice()
		},
	}

	return cmd
}

// RunPractice loads configuration and runs the wizard until the user quits.
func (a *App) RunPractice() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("practice requires an interactive terminal")
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfig(wd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}

	client := gemini.NewHTTPClient(gemini.Options{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		HTTPClient: &http.Client{Timeout: timeout},
	})

	cat := catalog.Default()
	model := tui.NewModel(cat, coach.New(client, cat))

	slog.Info("starting practice session", "model", cfg.Model)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("practice session failed: %w", err)
	}
	return nil
}

// setupLogging routes slog to a file, since the TUI owns the terminal.
func setupLogging(cfg *config.Config) (*os.File, error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}
