package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/udesk/userdesk/internal/client/api"
	"github.com/udesk/userdesk/internal/client/config"
	"github.com/udesk/userdesk/internal/client/controller"
	"github.com/udesk/userdesk/internal/logging"
)

// App ties the shell together: the list controller, the prompter, and the
// input/output streams. The scanner and writer are fields so tests can drive
// the shell without a terminal.
type App struct {
	config   *config.Config
	list     *controller.List
	prompter Prompter
	logger   logging.Logger
	scanner  *bufio.Scanner
	out      io.Writer
}

func NewApp(c *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	client := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, logger)

	return &App{
		config:   c,
		list:     controller.NewList(client, logger, c.StatusTTL),
		prompter: NewSurveyPrompter(),
		logger:   logger,
		scanner:  bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}
}

// Run starts the interactive shell. It refuses to start when stdin is not a
// terminal, since every flow here is prompt-driven.
func (a *App) Run(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("cli: stdin is not a terminal")
	}

	defer a.list.Close()
	a.root(ctx)
	return nil
}
