package csvsource

import "errors"

// Sentinel kinds for dataset ingestion errors.
var (
	ErrOpen   = errors.New("open dataset failed")
	ErrParse  = errors.New("parse dataset failed")
	ErrHeader = errors.New("dataset has no header")
)
