package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrSessionNotFound = goerr.New("view session not found")
	ErrYearNotFound    = goerr.New("year not found in dataset")
)
