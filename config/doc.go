// Package config loads tabkit configuration from YAML files, .env files
// and TABKIT_* environment variables.
//
// Viper reads the resolved config file, godotenv loads the nearest .env
// file, and every prefixed environment variable is bound under each nested
// key it could name (TABKIT_STUDENTS_MIN_MARKS sets students.min_marks).
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile(path))
//	if err != nil {
//	    return err
//	}
//
// Command-line flags are applied by the caller after Load and before
// Validate.
package config
