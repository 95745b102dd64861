package app

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"unity-activate/internal/activation"
	"unity-activate/internal/config"
)

const twoCandidates = "EMAIL: a@x.com\nPASS: p1\nSERIAL: S1\n\nEMAIL: b@x.com\nPASS: p2\nSERIAL: S2"

// fakeUnity writes a shell script standing in for the editor. It exits 0
// only for the given username, which is the ninth argument.
func fakeUnity(t *testing.T, acceptedEmail string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake editor is a POSIX shell script")
	}
	path := filepath.Join(t.TempDir(), "Unity")
	script := "#!/bin/sh\nif [ \"$9\" = \"" + acceptedEmail + "\" ]; then exit 0; fi\nexit 1\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// setActivationEnv gives every variable the activation reads a known value.
func setActivationEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for _, name := range []string{
		config.EnvLicensePath, config.EnvUnityVersion, config.EnvEditorPath,
		config.EnvCredentials, config.EnvEmail, config.EnvPassword, config.EnvSerial,
		config.EnvExportFile, config.EnvLogLevel,
	} {
		t.Setenv(name, values[name])
	}
}

// settingsDir writes a config.yaml so the user's own settings are not read.
func settingsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	data, err := yaml.Marshal(config.GetDefaultSettings())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o644))
	return dir
}

// runApplication bootstraps and runs an Application, returning its output.
func runApplication(t *testing.T, cfg *Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cfg.Out = &out
	cfg.Err = &bytes.Buffer{}

	application, err := NewApplication(cfg)
	if err != nil {
		return out.String(), err
	}
	err = application.Run()
	return out.String(), err
}

func TestApplication_BulkExportsWinner(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "activation.env")
	setActivationEnv(t, map[string]string{
		config.EnvLicensePath: filepath.Join(t.TempDir(), "activate"),
		config.EnvEditorPath:  fakeUnity(t, "b@x.com"),
		config.EnvCredentials: twoCandidates,
		config.EnvExportFile:  envFile,
	})

	out, err := runApplication(t, &Config{ConfigDir: settingsDir(t)})
	require.NoError(t, err)

	assert.Contains(t, out, "Trying to activate license for a@x.com")
	assert.Contains(t, out, "Activation complete with credentials: bATx.com")
	assert.Contains(t, out, "License activation successful.")
	assert.NotContains(t, out, "::error ::")

	assert.Equal(t, "b@x.com", os.Getenv(config.EnvEmail))
	assert.Equal(t, "p2", os.Getenv(config.EnvPassword))
	assert.Equal(t, "S2", os.Getenv(config.EnvSerial))

	exported, err := godotenv.Read(envFile)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", exported[config.EnvEmail])
}

func TestApplication_BulkAllFail(t *testing.T) {
	setActivationEnv(t, map[string]string{
		config.EnvLicensePath: filepath.Join(t.TempDir(), "activate"),
		config.EnvEditorPath:  fakeUnity(t, "nobody@x.com"),
		config.EnvCredentials: twoCandidates,
	})

	out, err := runApplication(t, &Config{ConfigDir: settingsDir(t)})
	require.Error(t, err)

	assert.True(t, activation.IsKind(err, activation.KindUnclassified))
	assert.Equal(t, 1, activation.ExitCode(err))
	assert.Contains(t, out, "Unclassified error occurred while trying to activate license.")
	assert.Contains(t, out, "::error ::There was an error while trying to activate the Unity license.")
	assert.Empty(t, os.Getenv(config.EnvEmail), "nothing is exported on failure")
}

func TestApplication_SingleDoesNotExport(t *testing.T) {
	setActivationEnv(t, map[string]string{
		config.EnvLicensePath: filepath.Join(t.TempDir(), "activate"),
		config.EnvEditorPath:  fakeUnity(t, "single@x.com"),
		config.EnvEmail:       "single@x.com",
		config.EnvPassword:    "pw",
		config.EnvSerial:      "SER",
	})

	out, err := runApplication(t, &Config{ConfigDir: settingsDir(t)})
	require.NoError(t, err)
	assert.Contains(t, out, "Requesting activation with default credentials")
	assert.Contains(t, out, "License activation successful.")
}

func TestApplication_DryRun(t *testing.T) {
	setActivationEnv(t, map[string]string{
		config.EnvLicensePath:  filepath.Join(t.TempDir(), "activate"),
		config.EnvUnityVersion: "2022.3.10f1",
		config.EnvCredentials:  twoCandidates,
	})

	out, err := runApplication(t, &Config{ConfigDir: settingsDir(t), DryRun: true})
	require.NoError(t, err)

	assert.Contains(t, out, "[dry-run] /Applications/Unity/Hub/Editor/2022.3.10f1/Unity.app/Contents/MacOS/Unity")
	assert.NotContains(t, out, "-password p1")
	assert.Empty(t, os.Getenv(config.EnvEmail), "dry run does not export")
}

func TestApplication_MissingUnityVersion(t *testing.T) {
	setActivationEnv(t, map[string]string{
		config.EnvLicensePath: filepath.Join(t.TempDir(), "activate"),
		config.EnvCredentials: twoCandidates,
	})

	out, err := runApplication(t, &Config{ConfigDir: settingsDir(t)})
	require.Error(t, err)

	assert.True(t, activation.IsKind(err, activation.KindMissingConfig))
	assert.Equal(t, 1, activation.ExitCode(err))
	assert.Contains(t, out, "Missing environment variable: UNITY_VERSION")
	assert.NotContains(t, out, "::error ::")
}

func TestApplication_LaunchFailureExitCode(t *testing.T) {
	setActivationEnv(t, map[string]string{
		config.EnvLicensePath: filepath.Join(t.TempDir(), "activate"),
		config.EnvEditorPath:  filepath.Join(t.TempDir(), "missing", "Unity"),
		config.EnvCredentials: twoCandidates,
	})

	out, err := runApplication(t, &Config{ConfigDir: settingsDir(t)})
	require.Error(t, err)

	assert.True(t, activation.IsKind(err, activation.KindLaunchFailure))
	assert.Equal(t, -1, activation.ExitCode(err))
	assert.Contains(t, out, "Unity activation failed with exit code: -1")
}

func TestNewApplication_BadConfigDir(t *testing.T) {
	setActivationEnv(t, map[string]string{})

	out, err := runApplication(t, &Config{ConfigDir: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.Equal(t, 1, activation.ExitCode(err))
	assert.Contains(t, out, "error loading config")
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, false, "/etc/unity-activate")

	assert.True(t, cfg.Debug)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, "/etc/unity-activate", cfg.ConfigDir)
	assert.Equal(t, os.Stdout, cfg.Out)
	assert.Equal(t, os.Stderr, cfg.Err)
}
