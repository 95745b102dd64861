package config

// Environment variable names.
const (
	EnvLicensePath  = "ACTIVATE_LICENSE_PATH"
	EnvUnityVersion = "UNITY_VERSION"
	EnvEditorPath   = "UNITY_EDITOR_PATH"
	EnvCredentials  = "UNITY_CREDENTIALS"
	EnvEmail        = "UNITY_EMAIL"
	EnvPassword     = "UNITY_PASSWORD"
	EnvSerial       = "UNITY_SERIAL"
	EnvExportFile   = "UNITY_ACTIVATION_ENV_FILE"
	EnvLogLevel     = "LOG_LEVEL"
)

// Environment holds the per-run values read from the process environment.
type Environment struct {
	LicensePath  string `env:"ACTIVATE_LICENSE_PATH"`
	UnityVersion string `env:"UNITY_VERSION"`
	EditorPath   string `env:"UNITY_EDITOR_PATH"`
	Credentials  string `env:"UNITY_CREDENTIALS"`
	Email        string `env:"UNITY_EMAIL"`
	Password     string `env:"UNITY_PASSWORD"`
	Serial       string `env:"UNITY_SERIAL"`
	ExportFile   string `env:"UNITY_ACTIVATION_ENV_FILE"`
	LogLevel     string `env:"LOG_LEVEL" default:"info"`
}

// Settings describes the build machine.
type Settings struct {
	Editor  EditorSettings  `yaml:"editor"`
	Project ProjectSettings `yaml:"project"`
}

// EditorSettings locates and parameterizes the Unity Editor binary.
type EditorSettings struct {
	// PathTemplate is the editor path with a {{ version }} placeholder.
	PathTemplate string   `yaml:"pathTemplate,omitempty"`
	ExtraArgs    []string `yaml:"extraArgs,omitempty"`
}

// ProjectSettings controls the activation project skeleton.
type ProjectSettings struct {
	// Subdirectory must exist inside the project for the editor to accept it.
	Subdirectory string `yaml:"subdirectory,omitempty"`
}

// Config is the complete configuration of a run.
type Config struct {
	Env      Environment
	Settings Settings
}
