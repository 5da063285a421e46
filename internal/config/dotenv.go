package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// dotEnvFile is the conventional file name loaded from the working
// directory at startup.
const dotEnvFile = ".env"

// loadDotEnv loads the .env file into the process environment so that the
// subsequent env source picks its values up. Variables already present in
// the environment are not overridden (godotenv semantics), so real
// environment variables keep priority over file contents.
//
// A missing .env file is silently ignored; any other read or parse failure
// is returned.
func loadDotEnv() error {
	if err := godotenv.Load(dotEnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("error loading %s file: %w", dotEnvFile, err)
	}

	return nil
}
