// Package launch implements the container entrypoint contract.
//
// At container start the launcher resolves the listen port from the PORT
// environment variable (falling back to DefaultPort), starts exactly one
// server process that loads the external application object and binds
// 0.0.0.0 on the resolved port, and runs it as the foreground process. The
// server's exit ends the container and its exit code is propagated.
//
// Port resolution is deliberately plain string substitution. A non-numeric
// PORT is handed to the server untouched and fails its argument validation
// there, which keeps a single authority over what a valid port is and avoids
// silently binding somewhere else.
//
// ShellCommand renders the same contract in shell form for baking into an
// image's CMD, so the build-time and run-time behavior cannot drift apart.
package launch
