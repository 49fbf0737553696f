package launch

// Config holds configuration for the server process.
type Config struct {
	// Program is the server binary started as the foreground process.
	Program string `mapstructure:"program" default:"uvicorn"`
	// App is the module-qualified name of the application object the server
	// loads. Its internals are the application's business, not ours.
	App string `mapstructure:"app" default:"app:app"`
	// Host is the bind address handed to the server.
	Host string `mapstructure:"host" default:"0.0.0.0"`
}
