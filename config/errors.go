package config

import "errors"

// Report validation errors returned by Report.Validate.
var (
	ErrNoInput            = errors.New("no input workbook specified")
	ErrNoOutput           = errors.New("no output file specified")
	ErrNoLevels           = errors.New("no grouping levels specified")
	ErrNoColumns          = errors.New("no table columns specified")
	ErrUnknownFormat      = errors.New("unknown output format: must be html or markdown")
	ErrInvalidParallelism = errors.New("invalid parallelism: must be non-negative")
	ErrInvalidCollation   = errors.New("invalid collation: must be a BCP 47 language tag")
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// ErrReportNotFound is returned when a named report is not in the file.
var ErrReportNotFound = errors.New("report not found")
