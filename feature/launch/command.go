package launch

import "fmt"

// Args returns the argument vector that starts the server process loading
// the application object and binding host:port.
func (c Config) Args(port string) []string {
	return []string{c.App, "--host", c.Host, "--port", port}
}

// ShellCommand returns the start command in shell form, leaving the port
// fallback to the shell. Baked into an image as its CMD, it gives container
// start the same contract the Launcher implements in-process: the
// platform-injected PORT wins, DefaultPort otherwise.
func (c Config) ShellCommand() string {
	return fmt.Sprintf("%s %s --host %s --port ${%s:-%s}",
		c.Program, c.App, c.Host, PortVar, DefaultPort)
}
