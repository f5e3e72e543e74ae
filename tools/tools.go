//go:build tools

// Package tools pins code-generation tool dependencies.
package tools

import (
	_ "github.com/dmarkham/enumer"
)
