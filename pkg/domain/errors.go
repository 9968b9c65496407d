package domain

import "errors"

// ErrInsufficientData is returned by the calling layer when a window
// holds too few events for a meaningful analysis. The engine itself never
// raises it: inside the engine, sparse data degrades to zero-correlation
// defaults instead.
var ErrInsufficientData = errors.New("not enough data for correlation analysis")
