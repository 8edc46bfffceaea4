package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with
// errors.Is().
var (
	// ErrInvalidFormat is returned when the output format is not one of
	// text, markdown, json, or html.
	ErrInvalidFormat = errors.New("invalid output format: must be text, markdown, json, or html")

	// ErrEmptyTitle is returned when the HTML page title is blank.
	ErrEmptyTitle = errors.New("invalid title: must not be empty")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
