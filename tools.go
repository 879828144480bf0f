//go:build tools

// Package tauthy tracks build-time tools. mockgen is run through go generate
// (see the //go:generate lines in repositories and opinion) and pinned here so
// go.mod keeps it.
package tauthy

import (
	_ "go.uber.org/mock/mockgen"
)
