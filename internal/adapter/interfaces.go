// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the sources that resolve module names into parsed
// configuration documents.
//
// The primary abstraction is [ModuleSource]. The package ships a Consul K/V
// implementation ([NewConsulSource]) that fetches each module over HTTP, and
// a local file implementation ([NewFileSource]) that reads every module from
// one JSON file.
//
// Error values defined in errors.go let callers use [errors.Is] regardless of
// the source in use (e.g. [ErrModuleNotFound], [ErrMalformedEnvelope]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-config-gen/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/module_source_mock.go -package=mock

// ModuleSource resolves one module name into its configuration document.
// Implementations must be safe for concurrent use because modules are fetched
// in parallel.
type ModuleSource interface {
	// Fetch returns the object document stored for moduleName. The returned
	// node is always of kind [models.KindObject].
	Fetch(ctx context.Context, moduleName string) (*models.Node, error)
}
