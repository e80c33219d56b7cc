package server

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrEmptyLineup    = errors.New("lineup text is empty")
	ErrNoStorage      = errors.New("storage is not configured")
	ErrExportExists   = errors.New("export already exists")
	ErrExportNotFound = errors.New("export not found")
)
