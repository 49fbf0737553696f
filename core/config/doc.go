// Package config provides configuration management for Launchpad.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file (loaded via godotenv when present).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Build: image baking (base image, manifest, app file, tag, build tool)
//   - Launch: server process (program, application object, bind host)
//   - Storage: S3/MinIO artifact storage for published image tarballs
//   - Database: build ledger connection (sqlite or mysql)
//   - Log: logger level and format
//
// Defaults come from the `default` struct tags; environment variables map
// onto nested keys with underscores (BUILD_TAG -> build.tag).
//
// Note: the PORT variable of the launch contract is intentionally NOT part
// of this structure. It is read directly by feature/launch at process start,
// keeping a single resolution path for the listen port.
package config
