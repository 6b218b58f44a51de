package math

import "github.com/LxyIsMyself/Copy-rocFFT/internal/fftypes"

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex
