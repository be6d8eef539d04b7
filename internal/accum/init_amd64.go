//go:build amd64 && !purego

package accum

// This file imports the kernel packages available on amd64 to trigger their
// init() functions, which register implementations with the global registry.

import (
	_ "github.com/cwbudde/algo-dadd/internal/accum/arch/generic"
	_ "github.com/cwbudde/algo-dadd/internal/accum/arch/lanes"
)
