package env

import (
	"os"
	"strconv"
)

func Debug() bool {
	return os.Getenv("DEBUG") != ""
}

// Strict reports whether color values must parse as CSS colors.
func Strict() bool {
	switch os.Getenv("RR_STRICT") {
	case "1", "true":
		return true
	}
	return false
}

func Timeout() (int, bool) {
	if s := os.Getenv("RR_TIMEOUT"); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return int(i), true
		}
	}
	return -1, false
}
