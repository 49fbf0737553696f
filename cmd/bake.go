package cmd

import (
	"fmt"
	"time"

	"launchpad/core/config"
	"launchpad/core/database"
	"launchpad/core/logger"
	"launchpad/feature/build"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bakeCmd represents the bake command
var bakeCmd = &cobra.Command{
	Use:   "bake",
	Short: "Build the runtime image",
	Long: `Builds the runtime image from the configured base image, dependency
manifest and application file. Any dependency that cannot be installed fails
the build with a non-zero exit; nothing is retried and no image is recorded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		buildID := uuid.NewString()
		logg = logger.WithBuildID(logg, buildID)

		// Connect to the build ledger (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional build ledger connection failed", zap.Error(err))
		} else if err := build.Migrate(conn); err != nil {
			logg.Warn("Failed to migrate build ledger", zap.Error(err))
		} else {
			db = conn
		}

		svc := build.NewService(cfg.Build, cfg.Launch, build.ExecRunner{}, logg, db)
		record, err := svc.Bake(ctx, buildID)
		if err != nil {
			return err
		}

		logg.Info("Image built",
			zap.String("tag", record.Tag),
			zap.String("image_id", record.ImageID),
			zap.String("manifest_digest", record.ManifestDigest),
			zap.Int("packages", record.Packages),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bakeCmd)
}
