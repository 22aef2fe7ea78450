//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep mockgen, invoked via
// `go generate` from contract/, tracked in go.mod.
package grouptalk

import (
	_ "go.uber.org/mock/mockgen"
)
