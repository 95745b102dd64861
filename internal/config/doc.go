// Package config provides configuration management for unity-activate.
//
// Configuration comes from two places: the process environment, which carries
// everything a CI pipeline sets per run (paths, versions, credentials), and
// optional YAML settings files that describe the build machine.
//
// # Environment
//
// A .env file in the working directory is loaded first if present. Variables
// already set in the environment take precedence over it.
//
//	ACTIVATE_LICENSE_PATH   project directory used for activation (required)
//	UNITY_VERSION           editor version, used to build the editor path
//	UNITY_EDITOR_PATH       explicit editor binary, overrides UNITY_VERSION
//	UNITY_CREDENTIALS       bulk credential block, tried in order
//	UNITY_EMAIL             single credential set, used when the
//	UNITY_PASSWORD          bulk block is absent or empty
//	UNITY_SERIAL
//	UNITY_ACTIVATION_ENV_FILE  dotenv file that receives the winning credential
//	LOG_LEVEL               debug, info, warn or error
//
// # Settings Layers
//
// Settings are loaded and merged in the following order:
//
//  1. Built-in defaults
//  2. User settings (~/.config/unity-activate/config.yaml)
//  3. Project settings (./.unity-activate/config.yaml)
//
// Example:
//
//	editor:
//	  pathTemplate: "/opt/unity/editors/{{ version }}/Editor/Unity"
//	  extraArgs: ["-disable-assembly-updater"]
//	project:
//	  subdirectory: "Assets"
package config
