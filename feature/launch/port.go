package launch

import "os"

// PortVar is the environment variable the hosting platform uses to hand the
// service its listen port.
const PortVar = "PORT"

// DefaultPort is the conventional contact point declared by the image and
// the fallback used when the platform does not inject PORT. It is the only
// place the default lives: the recipe's EXPOSE line, the baked start
// command's shell fallback and the runtime resolution all read it.
const DefaultPort = "10000"

// ResolvePort returns the value of PORT verbatim when set and non-empty,
// otherwise DefaultPort. This is string substitution, not validation: a
// malformed value is passed through uninterpreted, and the server process
// fails its own argument parsing rather than this layer silently binding an
// unintended port.
func ResolvePort() string {
	if v := os.Getenv(PortVar); v != "" {
		return v
	}
	return DefaultPort
}
