// Package database handles the build ledger database connection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that opens
// either a local SQLite file (the default, no server required) or a shared
// MySQL database, based on the application's configuration.
//
// # Connect
//
// The Connect function establishes the connection for the configured driver.
// Connection failures are not fatal for baking: the caller decides whether a
// ledger is required for the operation at hand.
//
// # Schema Inspection
//
// The package includes tools to inspect the ledger schema. GetTableColumns
// retrieves column definitions for a table (PRAGMA table_info on SQLite,
// SHOW COLUMNS on MySQL) and HasColumns verifies the ledger table against the
// columns the build model expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("ledger unavailable", zap.Error(err))
//	}
package database
