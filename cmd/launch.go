package cmd

import (
	"fmt"
	"os"

	"launchpad/core/config"
	"launchpad/core/logger"
	"launchpad/feature/launch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// launchCmd represents the launch command
var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Start the server process as the container foreground process",
	Long: `Resolves the listen port from the PORT environment variable (default
` + launch.DefaultPort + `) and starts one server process bound to 0.0.0.0 on that port,
loading the configured application object. The server process's exit ends the
container; its exit code becomes launchpad's own. Restart and health checking
belong to the orchestrator, not to this command.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			fmt.Printf("Failed to create logger: %v\n", err)
			os.Exit(1)
		}

		launcher := launch.New(cfg.Launch, logg)
		code, err := launcher.Run(cmd.Context())
		if err != nil {
			logg.Error("Server process failed", zap.Error(err))
		}
		_ = logg.Sync()
		os.Exit(code)
	},
}

func init() {
	RootCmd.AddCommand(launchCmd)
}
