package ai

import "fmt"

// Model errors are configuration errors: they mean the artifact is corrupt or does not
// match the code, and the process should refuse to start rather than serve requests.
var (
	ErrInvalidModel         = fmt.Errorf("invalid model artifact")
	ErrDimensionMismatch    = fmt.Errorf("feature dimension mismatch")
	ErrNonFiniteProbability = fmt.Errorf("non-finite class probability")
)
