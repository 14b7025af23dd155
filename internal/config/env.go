package config

import "github.com/joho/godotenv"

// LoadEnv loads variables from the given .env files, or ./.env when none are
// given. Variables already set in the environment take precedence. A missing
// file is reported as an error satisfying os.IsNotExist.
func LoadEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}
