package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"genturix/internal/infrastructure/config"
	"genturix/internal/infrastructure/database"
	"genturix/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run, roll back and inspect versioned database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE:  runCreate,
	}
	cmd.Flags().StringVarP(&name, "name", "", "", "Migration name (required)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func scriptsPath() (string, error) {
	return filepath.Abs("./internal/infrastructure/migration/scripts")
}

func setup() (string, func(), error) {
	cfg, err := config.Load(env)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return "", nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return "", nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	path, err := scriptsPath()
	if err != nil {
		database.Close()
		return "", nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}
	return path, func() { database.Close() }, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	path, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql connection: %w", err)
	}
	if err := goose.Up(sqlDB, path); err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	path, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql connection: %w", err)
	}
	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, path); err != nil {
			return fmt.Errorf("migration down failed: %w", err)
		}
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	path, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql connection: %w", err)
	}
	if err := goose.Status(sqlDB, path); err != nil {
		return fmt.Errorf("migration status failed: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	path, err := scriptsPath()
	if err != nil {
		return fmt.Errorf("failed to resolve scripts path: %w", err)
	}
	if err := goose.Create(nil, path, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	return nil
}
