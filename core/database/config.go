package database

// Config holds configuration for the build ledger database.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Path is the database file for the sqlite driver.
	Path string `mapstructure:"path" default:"launchpad.db"`
	// Host is the database host (mysql driver).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql driver).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql driver).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql driver).
	Password string `mapstructure:"password" default:""`
	// Name is the database name (mysql driver).
	Name string `mapstructure:"name" default:"launchpad"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverSqlite = "sqlite"
	DriverMysql  = "mysql"
)

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverSqlite, DriverMysql:
		return true
	default:
		return false
	}
}
