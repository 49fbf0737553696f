package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"launchpad/core/config"
	"launchpad/core/database"
	"launchpad/core/logger"
	"launchpad/core/storage"
	"launchpad/feature/build"
	"launchpad/feature/publish"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	pushTag     string
	pushReplace bool
)

// pushCmd represents the push command
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Export a built image and upload it to object storage",
	Long: `Exports the tagged image to a tarball with the container build tool and
uploads it to the configured S3-compatible bucket. When the build ledger knows
the tag, the upload is keyed by the recorded build ID.`,
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

		tag := pushTag
		if tag == "" {
			tag = cfg.Build.Tag
		}

		// Connect to the build ledger (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional build ledger connection failed", zap.Error(err))
		} else {
			db = conn
		}

		svc := build.NewService(cfg.Build, cfg.Launch, build.ExecRunner{}, logg, db)

		// Reuse the recorded build ID when the ledger has one for this tag.
		buildID := uuid.NewString()
		if latest, err := svc.LatestFor(ctx, tag); err != nil {
			logg.Warn("Failed to look up build in ledger", zap.Error(err))
		} else if latest != nil {
			buildID = latest.ID
		}
		logg = logger.WithBuildID(logg, buildID)

		tarball := filepath.Join(os.TempDir(), "launchpad-export-"+buildID+".tar")
		defer os.Remove(tarball)

		logg.Info("Exporting image", zap.String("tag", tag))
		if err := svc.Export(ctx, tag, tarball); err != nil {
			return err
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		publisher := publish.NewService(client, cfg.Storage.Bucket, logg)
		object, err := publisher.Publish(ctx, tarball, tag, buildID, pushReplace)
		if err != nil {
			return err
		}

		logg.Info("Image published",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", object),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pushCmd)
	pushCmd.Flags().StringVar(&pushTag, "tag", "", "Image tag to push (defaults to the configured build tag)")
	pushCmd.Flags().BoolVar(&pushReplace, "replace", false, "Replace an already-published object")
}
