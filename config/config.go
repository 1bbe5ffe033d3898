// Package config reads launcher settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Prefix is prepended to every variable name looked up by this package
const Prefix = "MOLECULEBG_"

// Load reads .env files into the environment. Missing files are not an error.
func Load(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load env file: %w", err)
	}
	log.Println("config: loaded environment file")
	return nil
}

// String returns MOLECULEBG_<name>, or def when unset
func String(name, def string) string {
	if v, ok := os.LookupEnv(Prefix + name); ok && v != "" {
		return v
	}
	return def
}

// Int returns MOLECULEBG_<name> parsed as an int, or def when unset or invalid
func Int(name string, def int) int {
	v := String(name, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: ignoring %s%s=%q: %v", Prefix, name, v, err)
		return def
	}
	return n
}

// Int64 returns MOLECULEBG_<name> parsed as an int64, or def when unset or invalid
func Int64(name string, def int64) int64 {
	v := String(name, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("config: ignoring %s%s=%q: %v", Prefix, name, v, err)
		return def
	}
	return n
}

// Bool returns MOLECULEBG_<name> parsed as a bool, or def when unset or invalid
func Bool(name string, def bool) bool {
	v := String(name, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: ignoring %s%s=%q: %v", Prefix, name, v, err)
		return def
	}
	return b
}
