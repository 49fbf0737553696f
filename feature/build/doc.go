// Package build implements image baking.
//
// The Service assembles the recipe from configuration, writes it into the
// build context and drives the container build tool through a Runner. The
// failure policy is strict: any dependency-install or build error is the
// tool's non-zero exit, the bake aborts and nothing is recorded or retried.
// Transient fetch failures are the build environment's problem, not this
// package's.
//
// # Ledger
//
// Successful builds are recorded in the build ledger (GORM over SQLite or
// MySQL): build ID, tag, image ID, base image and a digest of the dependency
// manifest. The ledger is optional for baking and required for listing;
// VerifyLedger checks an existing table against the model's columns.
package build
