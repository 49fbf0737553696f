package launch

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePort(t *testing.T) {
	tests := []struct {
		name  string
		set   bool
		value string
		want  string
	}{
		{"Unset", false, "", DefaultPort},
		{"Empty", true, "", DefaultPort},
		{"Set", true, "8080", "8080"},
		{"HighPort", true, "65000", "65000"},
		// Malformed values pass through verbatim; the server process, not
		// this layer, rejects them.
		{"NonNumeric", true, "abc", "abc"},
		{"LeadingZero", true, "08080", "08080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(PortVar, tt.value)
			} else {
				// t.Setenv registers the restore; unset on top of it gives a
				// genuinely absent variable for the test body.
				t.Setenv(PortVar, "placeholder")
				os.Unsetenv(PortVar)
			}

			assert.Equal(t, tt.want, ResolvePort())
		})
	}
}

func TestDefaultPortSingleSource(t *testing.T) {
	// The declared default and the resolved fallback must be the same value:
	// changing DefaultPort must change the bound port identically.
	t.Setenv(PortVar, "placeholder")
	os.Unsetenv(PortVar)

	assert.Equal(t, DefaultPort, ResolvePort())
}
