// Package config loads editor settings from the settings file.
//
// The settings file holds one KEY = VALUE; pair per line. Lines starting
// with '#' or '/' are comments. Unknown keys are ignored, and a missing
// file yields the defaults.
package config
