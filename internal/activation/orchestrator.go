package activation

import (
	"path/filepath"

	"unity-activate/internal/config"
	"unity-activate/internal/credentials"
	"unity-activate/pkg/logging"
)

const subsystem = "Activation"

// Invoker runs one activation attempt and returns the editor exit status.
// A non-nil error means the editor could not be launched.
type Invoker interface {
	Activate(cred credentials.Record, projectPath string) (int, error)
}

// Reporter receives the human-readable progress lines of a run.
type Reporter interface {
	Status(format string, args ...interface{})
}

// Settings is the resolved input of a run.
type Settings struct {
	LicensePath     string
	ProjectSubdir   string
	BulkCredentials string
	Email           string
	Password        string
	Serial          string
}

// Outcome describes a finished run.
type Outcome struct {
	Succeeded  bool
	ExitStatus int
	Attempts   int
	// Winner is set only when bulk credentials were used and one succeeded.
	Winner *credentials.Record
}

// Orchestrator drives a single activation run.
type Orchestrator struct {
	settings Settings
	invoker  Invoker
	reporter Reporter
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(settings Settings, invoker Invoker, reporter Reporter) *Orchestrator {
	return &Orchestrator{
		settings: settings,
		invoker:  invoker,
		reporter: reporter,
	}
}

// Run prepares the project directory, then tries the bulk credentials in
// order or the single credential set. The working directory is restored
// before Run returns. Any returned error is an *Error.
func (o *Orchestrator) Run() (Outcome, error) {
	o.reporter.Status("Starting Unity license activation...")

	projectPath, err := o.prepareProject()
	if err != nil {
		return Outcome{}, err
	}

	o.reporter.Status("Changing to \"%s\" directory.", projectPath)
	restore, err := enterDir(projectPath)
	if err != nil {
		return Outcome{}, err
	}
	defer func() {
		if err := restore(); err != nil {
			logging.Error(subsystem, err, "Failed to restore working directory")
		}
	}()

	if o.settings.BulkCredentials != "" {
		o.reporter.Status("Requesting activation with array of credentials...")
		return o.runBulk(projectPath)
	}

	o.reporter.Status("Requesting activation with default credentials")
	logging.Debug(subsystem, "%s is empty, using single credential variables", config.EnvCredentials)
	return o.runSingle(projectPath)
}

// prepareProject returns the absolute project path after creating its
// directory tree. The path is made absolute so it stays valid after the
// working directory changes.
func (o *Orchestrator) prepareProject() (string, error) {
	if o.settings.LicensePath == "" {
		return "", MissingConfig(config.EnvLicensePath)
	}

	projectPath, err := filepath.Abs(o.settings.LicensePath)
	if err != nil {
		return "", DirectoryCreationFailure(o.settings.LicensePath, err)
	}

	if err := EnsureProjectDirs(projectPath, o.settings.ProjectSubdir); err != nil {
		return "", err
	}
	logging.Debug(subsystem, "Project directory ready at %s", projectPath)
	return projectPath, nil
}

func (o *Orchestrator) runBulk(projectPath string) (Outcome, error) {
	candidates := credentials.Parse(o.settings.BulkCredentials)
	logging.Info(subsystem, "Parsed %d candidate credential set(s)", len(candidates))

	// An empty candidate list counts as a generic failure.
	outcome := Outcome{ExitStatus: 1}
	for _, cred := range candidates {
		o.reporter.Status("Trying to activate license for %s", cred.Email)

		status, err := o.invoker.Activate(cred, projectPath)
		outcome.Attempts++
		outcome.ExitStatus = status
		if err != nil {
			return outcome, LaunchFailure(status, err)
		}

		if status == 0 {
			winner := cred
			outcome.Succeeded = true
			outcome.Winner = &winner
			o.reporter.Status("Activation complete with credentials: %s", cred.MaskedEmail())
			return outcome, nil
		}
		logging.Warn(subsystem, "Activation for %s exited with status %d", cred.MaskedEmail(), status)
	}

	return outcome, UnclassifiedFailure(outcome.ExitStatus)
}

func (o *Orchestrator) runSingle(projectPath string) (Outcome, error) {
	var missing []string
	if o.settings.Email == "" {
		missing = append(missing, config.EnvEmail)
	}
	if o.settings.Password == "" {
		missing = append(missing, config.EnvPassword)
	}
	if o.settings.Serial == "" {
		missing = append(missing, config.EnvSerial)
	}
	if len(missing) > 0 {
		return Outcome{}, MissingConfig(missing...)
	}

	cred := credentials.New(o.settings.Email, o.settings.Password, o.settings.Serial)
	status, err := o.invoker.Activate(cred, projectPath)
	outcome := Outcome{ExitStatus: status, Attempts: 1}
	if err != nil {
		return outcome, LaunchFailure(status, err)
	}
	if status != 0 {
		return outcome, UnclassifiedFailure(status)
	}

	outcome.Succeeded = true
	return outcome, nil
}
