// Package config provides configuration management for configdiff.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Command-line flags override the loaded values.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Compare: file filter, ignored substrings, output path, worker count
//   - Report: column and value delimiters, delimiter substitute
//   - Server: HTTP server settings for the serve command (port, API key)
//   - Database: optional run history database
//   - Storage: optional S3/MinIO report publishing
//   - Log: Logging level and format
//
// Defaults come from the `default` struct tags of each section. Environment
// variables use the upper-cased key path with "." replaced by "_", for example
// COMPARE_FILTER=*.ini or COMPARE_IGNORE_SUBSTRINGS=AJCD+,DJCD+.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Compare.Output)
package config
