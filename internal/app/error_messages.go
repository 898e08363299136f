// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires configgen together: it selects the module source for the
// configured mode, builds the generation service and the output writer, and
// runs one generation pass.
//
// All Msg* constants are human-readable message strings written into log
// entries to describe the outcome of a stage. Keeping them in one place
// ensures consistent wording between the application and the CLI.
package app

const (
	// MsgLoadingConfig is logged when the merged configuration cannot be
	// built or fails validation.
	MsgLoadingConfig = "error getting configs"

	// MsgCreatingSource is logged when the module source for the configured
	// mode cannot be created (e.g. unreadable file, bad consul address).
	MsgCreatingSource = "error creating module source"

	// MsgLoadingModuleOptions is logged when the module options cannot be
	// resolved from the options file.
	MsgLoadingModuleOptions = "error loading module options"

	// MsgGenerating is logged when module resolution or code generation
	// fails. No output is written in that case.
	MsgGenerating = "error generating code"

	// MsgWritingOutput is logged when the generated code cannot be written.
	MsgWritingOutput = "error writing generated code"

	// MsgRunFinished is logged once a run has written its output.
	MsgRunFinished = "configuration accessors generated"
)
