package build

// Config holds configuration for image baking.
type Config struct {
	// BaseImage is the runtime base image for the recipe.
	BaseImage string `mapstructure:"base_image" default:"python:3.11-slim"`
	// Manifest is the dependency manifest file, relative to the context.
	Manifest string `mapstructure:"manifest" default:"requirements.txt"`
	// Installer is the command that installs the manifest; the manifest path
	// is appended. Version resolution stays with the installer.
	Installer string `mapstructure:"installer" default:"pip install --no-cache-dir -r"`
	// AppFile is the application source file, relative to the context.
	AppFile string `mapstructure:"app_file" default:"app.py"`
	// Tag is the tag applied to the produced image.
	Tag string `mapstructure:"tag" default:"app:latest"`
	// Context is the build context directory.
	Context string `mapstructure:"context" default:"."`
	// Tool is the container build tool binary (docker, podman).
	Tool string `mapstructure:"tool" default:"docker"`
}
