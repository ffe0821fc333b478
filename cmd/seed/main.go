// Command seed provisions a credential record into the configured store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"authflow/config"
	"authflow/internal/domain/lifecycle"
	"authflow/internal/errors"
	"authflow/internal/infra/auth"
	logs "authflow/internal/infra/log"
	"authflow/internal/infra/persistence"
	"authflow/internal/usecase"
	"authflow/internal/usecase/impl"

	"github.com/spf13/pflag"
	"go.uber.org/fx"
)

type seedFlags struct {
	configName string
	name       string
	email      string
	password   string
	admin      bool
}

func parseFlags(args []string) (*seedFlags, error) {
	flags := &seedFlags{}
	fs := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	fs.StringVar(&flags.configName, "config", "users", "config file name without .yaml (APP_CONFIG wins when set)")
	fs.StringVar(&flags.name, "name", "", "display name")
	fs.StringVar(&flags.email, "email", "", "login email (required)")
	fs.StringVar(&flags.password, "password", "", "plaintext password (required, falls back to SEED_PASSWORD)")
	fs.BoolVar(&flags.admin, "admin", false, "mark the record as admin")

	if err := fs.Parse(args); err != nil {
		return nil, errors.WithStack(err)
	}

	if flags.password == "" {
		flags.password = os.Getenv("SEED_PASSWORD")
	}
	if flags.email == "" || flags.password == "" {
		return nil, errors.New("--email and --password are required")
	}

	return flags, nil
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	CredentialUC usecase.CredentialUsecase
	Logger       *slog.Logger
}

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.NewFor(flags.configName),
			logs.New,
			persistence.NewCredentialStore,
			auth.NewBcryptHasher,
			impl.NewCredentialService,
		),
		fx.Invoke(func(params seedParams) {
			params.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return provision(ctx, params, flags)
				},
			})
		}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	startErr := app.Start(ctx)
	stopErr := app.Stop(ctx)

	if err := errors.Join(startErr, stopErr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func provision(ctx context.Context, params seedParams, flags *seedFlags) error {
	identity, err := params.CredentialUC.Provision(ctx, &usecase.ProvisionInput{
		Name:     flags.name,
		Email:    flags.email,
		Password: flags.password,
		IsAdmin:  flags.admin,
	})
	if err != nil {
		return err
	}

	params.Logger.Info("Credential seeded",
		slog.String("id", identity.ID.String()),
		slog.String("email", identity.Email),
	)

	return nil
}
