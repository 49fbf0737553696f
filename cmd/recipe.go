package cmd

import (
	"fmt"
	"os"

	"launchpad/core/config"
	"launchpad/feature/build"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var recipeOutput string

// recipeCmd represents the recipe command
var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Render the image build recipe",
	Long: `Renders the Dockerfile that bake would build: dependency manifest
installed before the application file is added, the default port declared via
EXPOSE, and the launch contract baked in as the start command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		svc := build.NewService(cfg.Build, cfg.Launch, build.ExecRunner{}, zap.NewNop(), nil)
		rcp := svc.Recipe()
		if err := rcp.Validate(); err != nil {
			return err
		}

		rendered := rcp.Render()
		if recipeOutput != "" {
			if err := os.WriteFile(recipeOutput, []byte(rendered), 0644); err != nil {
				return fmt.Errorf("failed to write recipe: %w", err)
			}
			return nil
		}

		fmt.Print(rendered)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(recipeCmd)
	recipeCmd.Flags().StringVarP(&recipeOutput, "output", "o", "", "Write the recipe to a file instead of stdout")
}
