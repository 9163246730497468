package pipeline

import "time"

// RunStats aggregates the per-stage counters for one pipeline run. The
// pipeline never fails as a whole; these counters and the log output are
// the only result.
type RunStats struct {
	Cropped     int
	CropSkipped int
	CropFailed  int

	GridPages  int
	GridSaved  int
	GridFailed int

	Exported int

	ShareBytes int64
	ForgeBytes int64

	Elapsed time.Duration
}
