package pyproject

import "errors"

// Sentinel errors for the pyproject package
var (
	// ErrFileNotFound indicates the pyproject.toml file does not exist
	ErrFileNotFound = errors.New("pyproject.toml file not found")

	// ErrInvalidTOML indicates the file is not valid TOML
	ErrInvalidTOML = errors.New("pyproject.toml must be valid TOML")
)
