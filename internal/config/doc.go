// Package config manages user-level settings stored at ~/.abench/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the gnuplot binary path and the default report output directory. Every key
// can also be supplied through ABENCH_-prefixed environment variables.
package config
