// Package activation runs a Unity license activation from start to finish.
//
// A run is strictly linear:
//
//  1. Ensure ACTIVATE_LICENSE_PATH and its project subdirectory exist.
//  2. Switch into that directory; the previous working directory is restored
//     on every return path.
//  3. With UNITY_CREDENTIALS set, try each parsed credential set in input
//     order until the editor exits 0. Otherwise activate once with
//     UNITY_EMAIL, UNITY_PASSWORD and UNITY_SERIAL.
//  4. Return an Outcome. The winning bulk credential is part of the Outcome;
//     exporting it is up to the caller.
//
// Failures are reported as *Error with one of a closed set of kinds. Only the
// bulk fallback retries, and only with the next credential set: a launch
// failure ends the run.
package activation
