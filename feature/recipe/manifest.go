package recipe

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// Manifest is a parsed dependency manifest.
type Manifest struct {
	// Path is where the manifest was read from.
	Path string
	// Packages are the declared requirements, one per line in the source
	// file. The requirement syntax itself is owned by the packaging
	// ecosystem and is not interpreted here; resolution and pinning stay
	// with the installer.
	Packages []string
	// Digest is the sha256 of the raw file, recorded in the build ledger so
	// two builds of the same code with different dependencies are
	// distinguishable.
	Digest string
}

// LoadManifest reads a dependency manifest. Blank lines and #-comments are
// skipped; a missing file or a manifest declaring nothing is an error, since
// baking an image with no installed dependencies is almost certainly a
// misconfigured context.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dependency manifest: %w", err)
	}

	sum := sha256.Sum256(data)

	var packages []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		packages = append(packages, line)
	}

	if len(packages) == 0 {
		return nil, fmt.Errorf("dependency manifest %s declares no packages", path)
	}

	return &Manifest{
		Path:     path,
		Packages: packages,
		Digest:   hex.EncodeToString(sum[:]),
	}, nil
}
