package models

import "time"

// Build is one ledger row describing a successfully baked image. Failed
// builds are never recorded: a failed build publishes nothing.
type Build struct {
	// ID is the build correlation ID (UUID).
	ID string `gorm:"primaryKey;size:36"`
	// Tag is the image tag the build produced.
	Tag string `gorm:"size:255;index"`
	// ImageID is the content-addressed ID reported by the build tool.
	ImageID string `gorm:"size:255"`
	// BaseImage is the runtime base the image was built from.
	BaseImage string `gorm:"size:255"`
	// ManifestDigest is the sha256 of the dependency manifest.
	ManifestDigest string `gorm:"size:64"`
	// Packages is the number of requirements the manifest declared.
	Packages int
	// CreatedAt is when the build finished.
	CreatedAt time.Time
}

// Columns the ledger table must declare; used by schema verification.
func (Build) RequiredColumns() []string {
	return []string{"id", "tag", "image_id", "base_image", "manifest_digest", "packages", "created_at"}
}
