package config

// DefaultPathTemplate is the Unity Hub install location on macOS.
const DefaultPathTemplate = "/Applications/Unity/Hub/Editor/{{ version }}/Unity.app/Contents/MacOS/Unity"

// DefaultProjectSubdirectory is created inside the activation project.
const DefaultProjectSubdirectory = "Assets"

// GetDefaultSettings returns the built-in settings.
func GetDefaultSettings() Settings {
	return Settings{
		Editor: EditorSettings{
			PathTemplate: DefaultPathTemplate,
		},
		Project: ProjectSettings{
			Subdirectory: DefaultProjectSubdirectory,
		},
	}
}
