package main

import (
	"os"
	"path/filepath"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func home(name string) string {
	return filepath.Join(os.Getenv("HOME"), ".escrowcli", name)
}

func defaultDB() string {
	return env("ESCROWCLI_DB", home("db"))
}

func defaultKey() string {
	return env("ESCROWCLI_KEY", home("id.json"))
}

func defaultDeployFile() string {
	return env("ESCROWCLI_DEPLOY", home("deploy.toml"))
}
