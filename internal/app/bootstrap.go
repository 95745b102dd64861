package app

import (
	"fmt"

	"unity-activate/internal/activation"
	"unity-activate/internal/config"
	"unity-activate/internal/editor"
	"unity-activate/internal/export"
	"unity-activate/internal/reporting"
	"unity-activate/pkg/logging"
)

const subsystem = "Bootstrap"

// Application wires configuration, the editor and the exporters around one
// activation run. Every error it returns has already been printed.
type Application struct {
	config   *Config
	console  *reporting.ConsoleReporter
	settings activation.Settings
	invoker  activation.Invoker
	exporter export.Exporter
}

// NewApplication loads configuration and prepares the editor invocation.
func NewApplication(cfg *Config) (*Application, error) {
	console := reporting.NewConsoleReporter(cfg.Out)

	envCfg, err := config.Load(cfg.ConfigDir)
	if err != nil {
		logging.Init(logging.LevelInfo, cfg.Err)
		logging.Error(subsystem, err, "Failed to load configuration")
		console.Failure(err)
		return nil, err
	}

	// Configure logging based on LOG_LEVEL and the debug flag
	appLogLevel := logging.ParseLevel(envCfg.Env.LogLevel)
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.Init(appLogLevel, cfg.Err)

	editorPath, err := resolveEditorPath(envCfg)
	if err != nil {
		console.Failure(err)
		return nil, err
	}
	logging.Debug(subsystem, "Using Unity Editor at %s", editorPath)

	unity := editor.New(editorPath,
		editor.WithExtraArgs(envCfg.Settings.Editor.ExtraArgs...),
		editor.WithOutput(cfg.Out, cfg.Err),
	)
	var invoker activation.Invoker = unity
	if cfg.DryRun {
		invoker = editor.NewDryRun(unity, cfg.Out)
	}

	return &Application{
		config:  cfg,
		console: console,
		settings: activation.Settings{
			LicensePath:     envCfg.Env.LicensePath,
			ProjectSubdir:   envCfg.Settings.Project.Subdirectory,
			BulkCredentials: envCfg.Env.Credentials,
			Email:           envCfg.Env.Email,
			Password:        envCfg.Env.Password,
			Serial:          envCfg.Env.Serial,
		},
		invoker:  invoker,
		exporter: export.ForConfig(envCfg.Env),
	}, nil
}

// resolveEditorPath prefers UNITY_EDITOR_PATH and otherwise fills the
// version into the configured path template.
func resolveEditorPath(cfg *config.Config) (string, error) {
	if cfg.Env.EditorPath != "" {
		return cfg.Env.EditorPath, nil
	}
	if cfg.Env.UnityVersion == "" {
		return "", activation.MissingConfig(config.EnvUnityVersion)
	}
	return editor.ResolvePath(cfg.Settings.Editor.PathTemplate, cfg.Env.UnityVersion), nil
}

// Run performs the activation, exports a winning bulk credential and
// prints the final result.
func (a *Application) Run() error {
	outcome, err := activation.NewOrchestrator(a.settings, a.invoker, a.console).Run()
	if err != nil {
		a.console.Failure(err)
		return err
	}

	if outcome.Winner != nil && !a.config.DryRun {
		if err := a.exporter.Export(*outcome.Winner); err != nil {
			err = fmt.Errorf("failed to export winning credentials: %w", err)
			logging.Error(subsystem, err, "License is active but cleanup will not find the credentials")
			a.console.Failure(err)
			return err
		}
		logging.Info(subsystem, "Exported credentials of %s", outcome.Winner.MaskedEmail())
	}

	a.console.Success()
	return nil
}
