package utils

import "cleansync/config"

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return config.IsProduction()
}
