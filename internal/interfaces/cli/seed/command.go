package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"helpcenter/internal/infrastructure/database"
	"helpcenter/internal/infrastructure/persistence/seeds"
	"helpcenter/internal/interfaces/cli/clienv"
	httpRouter "helpcenter/internal/interfaces/http"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture content",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.AddCommand(newGuidesCommand())

	return cmd
}

func newGuidesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guides",
		Short: "Create onboarding guides from a YAML file",
		Long:  `Create onboarding guides from a YAML file, or from the bundled defaults when --file is omitted. Guides whose slug already exists are skipped.`,
		RunE:  runGuides,
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to a guides YAML file")

	return cmd
}

func runGuides(cmd *cobra.Command, args []string) error {
	guides, err := seeds.LoadGuides(file)
	if err != nil {
		return err
	}

	env = clienv.ResolveEnv(env)
	cfg, log, err := clienv.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application container: %w", err)
	}
	defer container.Shutdown()

	created, err := container.SeedGuides(context.Background(), guides)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d of %d guides\n", created, len(guides))
	return nil
}
