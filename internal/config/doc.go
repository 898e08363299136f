// Package config provides configuration loading, merging, and validation
// facilities for configgen.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Settings file in the appsettings.json layout
//  3. Environment variables, seeded from a .env file
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the merged
// configuration and [StructuredConfig.ModuleOptions] for the per-module
// filter options of a run.
package config
