package service

import "errors"

var (
	ErrNoModuleSource          = errors.New("no module source provided")
	ErrNamespaceIsNotSpecified = errors.New("namespace is not specified")
	ErrNoModules               = errors.New("no modules to generate")
)
