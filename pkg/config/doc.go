// Package config loads library configuration from environment variables.
//
// Every knob has a sensible default so a bare environment still yields a
// working Config. Load reads and validates the environment once; Default
// returns the same defaults without touching the environment, which keeps
// tests hermetic.
package config
