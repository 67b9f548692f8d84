package sim

import "go.uber.org/zap"

// zapCoord renders a Coord as a structured zap field, following the
// teacher's convention of logging domain values as fields rather than
// formatting them into the message string.
func zapCoord(key string, c Coord) zap.Field {
	return zap.String(key, c.String())
}
