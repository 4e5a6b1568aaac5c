package model

import "errors"

var (
	ErrMissingField      = errors.New("missing required field")
	ErrMalformedManifest = errors.New("malformed manifest")
	ErrDuplicateName     = errors.New("duplicate repository name")
	ErrAlreadyExists     = errors.New("already exists")
)
