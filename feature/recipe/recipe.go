package recipe

import (
	"fmt"
	"strings"
)

// Recipe describes the build of a minimal runtime image for a single
// network-facing service: a base runtime, one dependency manifest, one
// application source file and the start command.
type Recipe struct {
	// BaseImage is the runtime base image.
	BaseImage string
	// Manifest is the dependency manifest file, relative to the context.
	Manifest string
	// Install is the command that installs the manifest into the runtime's
	// package environment. A non-zero exit fails the whole build.
	Install string
	// AppFile is the application source file, relative to the context.
	AppFile string
	// Port is the conventional contact point declared via EXPOSE. The
	// declaration is metadata; runtime binding always follows PORT.
	Port string
	// Command is the shell-form start command baked into the image.
	Command string
}

// Validate reports the first missing required field.
func (r Recipe) Validate() error {
	switch {
	case r.BaseImage == "":
		return fmt.Errorf("recipe is missing a base image")
	case r.Manifest == "":
		return fmt.Errorf("recipe is missing a dependency manifest")
	case r.Install == "":
		return fmt.Errorf("recipe is missing an install command")
	case r.AppFile == "":
		return fmt.Errorf("recipe is missing an application file")
	case r.Port == "":
		return fmt.Errorf("recipe is missing a declared port")
	case r.Command == "":
		return fmt.Errorf("recipe is missing a start command")
	}
	return nil
}

// Render produces the Dockerfile text. The manifest is copied and installed
// before the application file is added: dependency layers must cache
// independently of application edits, so this ordering is an invariant of
// the recipe, not a formatting choice.
func (r Recipe) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "FROM %s\n\n", r.BaseImage)
	b.WriteString("WORKDIR /app\n\n")

	// Dependency layer
	fmt.Fprintf(&b, "COPY %s ./\n", r.Manifest)
	fmt.Fprintf(&b, "RUN %s\n\n", r.Install)

	// Application layer
	fmt.Fprintf(&b, "COPY %s ./\n\n", r.AppFile)

	fmt.Fprintf(&b, "EXPOSE %s\n\n", r.Port)

	// Shell form on purpose: the ${PORT:-...} fallback is substituted by the
	// container's shell at start, not at build time.
	fmt.Fprintf(&b, "CMD %s\n", r.Command)

	return b.String()
}
