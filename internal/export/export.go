// Package export hands the winning bulk credential to later pipeline steps,
// which read UNITY_EMAIL, UNITY_PASSWORD and UNITY_SERIAL to return the
// license.
package export

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"unity-activate/internal/config"
	"unity-activate/internal/credentials"
)

// Exporter publishes a credential.
type Exporter interface {
	Export(cred credentials.Record) error
}

type variable struct {
	key, value string
}

// variables lists the exported names in a fixed order.
func variables(cred credentials.Record) []variable {
	return []variable{
		{config.EnvEmail, cred.Email},
		{config.EnvPassword, cred.Password},
		{config.EnvSerial, cred.Serial},
	}
}

// For mocking in tests
var osSetenv = os.Setenv

// ProcessEnv sets the credential in the current process environment, where
// child processes inherit it.
type ProcessEnv struct{}

func (ProcessEnv) Export(cred credentials.Record) error {
	for _, v := range variables(cred) {
		if err := osSetenv(v.key, v.value); err != nil {
			return fmt.Errorf("failed to set %s: %w", v.key, err)
		}
	}
	return nil
}

// DotenvFile appends the credential to a dotenv file. Existing content is
// never read or rewritten, so it may use any syntax the consumer accepts.
type DotenvFile struct {
	Path string
}

func (d DotenvFile) Export(cred credentials.Record) error {
	values := make(map[string]string, 3)
	for _, v := range variables(cred) {
		values[v.key] = v.value
	}
	content, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	// The file holds a password; a new file is created owner-only.
	f, err := os.OpenFile(d.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", d.Path, err)
	}
	if _, err := f.WriteString(content + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", d.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.Path, err)
	}
	return nil
}

// Chain runs exporters in order and stops at the first error.
type Chain []Exporter

func (c Chain) Export(cred credentials.Record) error {
	for _, exporter := range c {
		if err := exporter.Export(cred); err != nil {
			return err
		}
	}
	return nil
}

// ForConfig returns the exporters configured for env: always the process
// environment, plus a dotenv file when UNITY_ACTIVATION_ENV_FILE is set.
func ForConfig(env config.Environment) Chain {
	chain := Chain{ProcessEnv{}}
	if env.ExportFile != "" {
		chain = append(chain, DotenvFile{Path: env.ExportFile})
	}
	return chain
}
