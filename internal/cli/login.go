package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bodylab/trainlog/internal/domain"
)

// clientFlags are the identity flags shared by every command.
type clientFlags struct {
	name string
	code string
}

func (f *clientFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "client", "", "Client name")
	fs.StringVar(&f.code, "code", "", "Client access code")
}

// login verifies the client, asking for missing values when interactive.
func (f *clientFlags) login(ctx context.Context, app *App) (domain.Client, error) {
	if f.name == "" {
		if !app.Interactive {
			return domain.Client{}, fmt.Errorf("--client is required")
		}
		if err := wizardLogin(&f.name, &f.code).RunWithContext(ctx); err != nil {
			return domain.Client{}, err
		}
	}
	client, err := app.verifyAccessUseCase().Verify(ctx, f.name, f.code)
	if errors.Is(err, domain.ErrAccessDenied) {
		return domain.Client{}, fmt.Errorf("%w for %q", err, f.name)
	}
	return client, err
}
