// Package dig implements logic for dependency injection using uber-go/dig.

package dig

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// App boots the kernel and runs the CLI application resolved from it.
type App struct {
	Kernel *Kernel
}

func (t *App) Boot() error {
	if t.Kernel.Container != nil {
		return nil
	}
	if err := t.Kernel.Build(); err != nil {
		return fmt.Errorf("failed to build kernel: %w", err)
	}

	return nil
}

// Run resolves the cli.App and runs it with args, os.Args in production.
func (t *App) Run(args []string) error {
	if err := t.Boot(); err != nil {
		return err
	}

	return t.Kernel.Container.Invoke(func(app *cli.App) error {
		if err := app.Run(args); err != nil {
			return fmt.Errorf("failed to run application: %w", err)
		}
		return nil
	})
}

func NewApp(kernel *Kernel) *App {
	return &App{
		Kernel: kernel,
	}
}
