//go:build purego || !amd64

package accum

// This file imports the scalar kernels for every other build.

import (
	_ "github.com/cwbudde/algo-dadd/internal/accum/arch/generic"
)
