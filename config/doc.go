// Package config provides configuration management functionalities and interfaces.
//
// The package uses an interface-based design with five extension points:
//   - Parser: deserializes raw data into a config struct, with path navigation support
//   - TreeParser: assembles raw data into a configuration tree (see package tree)
//   - DataFetcher: retrieves raw config data (file, static bytes, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// Provider and TreeProvider accept a path parameter that targets a specific section
// within the configuration. Paths use dot (.) as the separator:
//
//	"api.permissions"           -> config["api"]["permissions"]
//	"servers.1"                 -> second element of the servers list
//	""                          -> entire document
//
// # Example
//
// A typical usage pattern:
//
//	type APIConfig struct {
//	    Timeout string `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	fetcher, err := filefetcher.NewFetcher("app.conf")()
//	provider := config.Provider(&APIConfig{}, "services.api")
//	cfg, err := provider(lcfgparser.NewParser(), fetcher)
package config
