package config

import "os"

func IsDebug() bool {
	return os.Getenv("LAPAK_DEBUG") == "1"
}
