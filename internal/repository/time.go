package repository

import "time"

// timeFormat is a fixed-width UTC layout. History ordering is plain string
// comparison in SQL, and fixed-width millisecond timestamps keep
// lexicographic order equal to chronological order (RFC3339Nano does not:
// it trims trailing zeros).
const timeFormat = "2006-01-02T15:04:05.000Z"

func nowUTC() string {
	return time.Now().UTC().Format(timeFormat)
}
