package services

import "errors"

// Error kinds surfaced to the HTTP layer; match with errors.Is.
var (
	// ErrInvalidArgument means the caller sent a malformed or out-of-range value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrParse means a reply could not be turned into three well-formed dish entries.
	ErrParse = errors.New("parse error")
	// ErrUpstreamService means the text-generation call failed or returned garbage.
	ErrUpstreamService = errors.New("upstream service error")
	// ErrStore means an insert or query against Postgres failed.
	ErrStore = errors.New("store error")
)
