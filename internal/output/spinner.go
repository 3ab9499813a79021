package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action with a spinner on stderr.
// When stderr is not a terminal the action runs directly.
// Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}

	done := make(chan error, 1)
	s := spinner.New().
		Context(ctx).
		Title(cfg.title).
		Action(func() {
			done <- action()
		})

	if err := s.Run(); err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}
	return <-done
}
