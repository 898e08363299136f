// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ModuleOption is the per-module generation policy.
//
// A nil pattern slice means the rule is not configured at all. A non-nil empty
// slice is a configured rule that matches nothing; for include rules this
// drops every child of the module.
type ModuleOption struct {
	// ModuleName is the module key in the configuration source and the root
	// of every generated path.
	ModuleName string `yaml:"module" json:"module" validate:"required"`

	// IncludePathPatterns keeps only the children whose path matches one of
	// the expressions.
	IncludePathPatterns []string `yaml:"include" json:"include,omitempty"`

	// ExcludePathPatterns drops every child whose path matches one of the
	// expressions.
	ExcludePathPatterns []string `yaml:"exclude" json:"exclude,omitempty"`

	// ExcludeChildrenPathPatterns stops recursion into object nodes whose own
	// path matches. The generic accessor of such a node is still emitted.
	ExcludeChildrenPathPatterns []string `yaml:"excludeChildren" json:"excludeChildren,omitempty"`
}

// NewModuleOption returns an option for moduleName with no filter rules.
func NewModuleOption(moduleName string) ModuleOption {
	return ModuleOption{ModuleName: moduleName}
}

// ModuleDocument pairs a module option with the document resolved for it.
// Document is nil when the source had no value for the module.
type ModuleDocument struct {
	Option   ModuleOption
	Document *Node
}
