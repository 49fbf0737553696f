package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"launchpad/core/database"
	"launchpad/feature/build/models"
	"launchpad/feature/launch"
	"launchpad/feature/recipe"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service bakes runtime images and records them in the build ledger.
type Service struct {
	cfg       Config
	launchCfg launch.Config
	runner    Runner
	logger    *zap.Logger
	db        *gorm.DB // optional; nil disables the ledger
}

// NewService creates a new build service. db may be nil, in which case no
// ledger rows are written.
func NewService(cfg Config, launchCfg launch.Config, runner Runner, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		cfg:       cfg,
		launchCfg: launchCfg,
		runner:    runner,
		logger:    logger,
		db:        db,
	}
}

// Recipe assembles the image recipe from configuration. The declared port
// and the baked start command both come from the launch contract, so the
// image and the entrypoint cannot disagree about the default.
func (s *Service) Recipe() recipe.Recipe {
	return recipe.Recipe{
		BaseImage: s.cfg.BaseImage,
		Manifest:  s.cfg.Manifest,
		Install:   s.cfg.Installer + " " + s.cfg.Manifest,
		AppFile:   s.cfg.AppFile,
		Port:      launch.DefaultPort,
		Command:   s.launchCfg.ShellCommand(),
	}
}

// Bake renders the recipe into the build context and drives the container
// build tool. Any dependency-install or build failure surfaces as the tool's
// non-zero exit: the bake aborts, nothing is recorded and nothing is
// retried. On success a ledger row is written when a ledger is configured.
func (s *Service) Bake(ctx context.Context, buildID string) (*models.Build, error) {
	manifest, err := recipe.LoadManifest(filepath.Join(s.cfg.Context, s.cfg.Manifest))
	if err != nil {
		return nil, err
	}

	rcp := s.Recipe()
	if err := rcp.Validate(); err != nil {
		return nil, err
	}

	appPath := filepath.Join(s.cfg.Context, s.cfg.AppFile)
	if _, err := os.Stat(appPath); err != nil {
		return nil, fmt.Errorf("application file %s not found: %w", appPath, err)
	}

	dockerfile := filepath.Join(s.cfg.Context, "Dockerfile")
	if err := os.WriteFile(dockerfile, []byte(rcp.Render()), 0644); err != nil {
		return nil, fmt.Errorf("failed to write recipe: %w", err)
	}

	// The tool writes the produced image ID here; absent on failure.
	iidFile := filepath.Join(os.TempDir(), "launchpad-iid-"+buildID)
	defer os.Remove(iidFile)

	s.logger.Info("Building image",
		zap.String("tag", s.cfg.Tag),
		zap.String("base_image", s.cfg.BaseImage),
		zap.Int("packages", len(manifest.Packages)),
	)

	err = s.runner.Run(ctx, os.Stdout, s.cfg.Tool,
		"build", "-t", s.cfg.Tag, "-f", dockerfile, "--iidfile", iidFile, s.cfg.Context)
	if err != nil {
		return nil, fmt.Errorf("image build failed: %w", err)
	}

	var imageID string
	if data, err := os.ReadFile(iidFile); err == nil {
		imageID = strings.TrimSpace(string(data))
	}

	record := &models.Build{
		ID:             buildID,
		Tag:            s.cfg.Tag,
		ImageID:        imageID,
		BaseImage:      s.cfg.BaseImage,
		ManifestDigest: manifest.Digest,
		Packages:       len(manifest.Packages),
	}

	if s.db != nil {
		if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
			// A finished image is not invalidated by a ledger hiccup.
			s.logger.Warn("Failed to record build in ledger", zap.Error(err))
		}
	}

	return record, nil
}

// Export saves a built image to a tarball at path.
func (s *Service) Export(ctx context.Context, tag, path string) error {
	if err := s.runner.Run(ctx, os.Stdout, s.cfg.Tool, "save", "-o", path, tag); err != nil {
		return fmt.Errorf("image export failed: %w", err)
	}
	return nil
}

// Recent returns the newest ledger rows, most recent first.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.Build, error) {
	if s.db == nil {
		return nil, fmt.Errorf("build ledger is not configured")
	}

	var builds []models.Build
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&builds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read build ledger: %w", err)
	}
	return builds, nil
}

// LatestFor returns the newest ledger row for a tag, or nil when the tag was
// never recorded (or no ledger is configured).
func (s *Service) LatestFor(ctx context.Context, tag string) (*models.Build, error) {
	if s.db == nil {
		return nil, nil
	}

	var b models.Build
	err := s.db.WithContext(ctx).Where("tag = ?", tag).Order("created_at DESC").First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read build ledger: %w", err)
	}
	return &b, nil
}

// Migrate creates the ledger schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Build{})
}

// VerifyLedger checks that the ledger table declares every column the build
// model needs, returning the missing column names.
func VerifyLedger(db *gorm.DB) ([]string, error) {
	return database.HasColumns(db, "builds", models.Build{}.RequiredColumns())
}
