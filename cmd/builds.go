package cmd

import (
	"fmt"

	"launchpad/core/config"
	"launchpad/core/database"
	"launchpad/core/logger"
	"launchpad/feature/build"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildsLimit  int
	buildsVerify bool
)

// buildsCmd represents the builds command
var buildsCmd = &cobra.Command{
	Use:   "builds",
	Short: "List the build ledger",
	Long:  `Lists recorded image builds, most recent first. Requires a reachable build ledger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		// Unlike bake, listing has nothing to do without the ledger.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("build ledger connection required: %w", err)
		}
		if err := build.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate build ledger: %w", err)
		}

		if buildsVerify {
			missing, err := build.VerifyLedger(db)
			if err != nil {
				return fmt.Errorf("ledger verification failed: %w", err)
			}
			if len(missing) > 0 {
				logg.Warn("Ledger schema is missing columns", zap.Strings("missing", missing))
			} else {
				logg.Info("Ledger schema is intact.")
			}
		}

		svc := build.NewService(cfg.Build, cfg.Launch, build.ExecRunner{}, logg, db)
		builds, err := svc.Recent(ctx, buildsLimit)
		if err != nil {
			return err
		}

		if len(builds) == 0 {
			fmt.Println("No builds recorded.")
			return nil
		}

		fmt.Println("\n=== Recorded Builds ===")
		for _, b := range builds {
			fmt.Printf("%s  %-24s  %-16s  packages=%d  %s\n",
				b.CreatedAt.Format("2006-01-02 15:04:05"),
				b.Tag,
				shortID(b.ImageID),
				b.Packages,
				b.ID,
			)
		}
		return nil
	},
}

// shortID trims a content-addressed image ID for display.
func shortID(id string) string {
	const prefix = "sha256:"
	if len(id) > len(prefix) && id[:len(prefix)] == prefix {
		id = id[len(prefix):]
	}
	if len(id) > 12 {
		return id[:12]
	}
	if id == "" {
		return "(unknown)"
	}
	return id
}

func init() {
	RootCmd.AddCommand(buildsCmd)
	buildsCmd.Flags().IntVar(&buildsLimit, "limit", 20, "Maximum number of builds to list")
	buildsCmd.Flags().BoolVar(&buildsVerify, "verify", false, "Verify the ledger schema against the build model")
}
