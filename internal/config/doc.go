// Package config provides configuration structures and utilities for nistpqc.
// It defines output preferences (format, destination, HTML title) and the
// optional catalog file, and loads them from a YAML configuration file.
package config
