package format

// epochOffsetDays is the number of days between the Paradox epoch
// (0001-01-01) and the Unix epoch (1970-01-01).
const epochOffsetDays = 719163

// DateRawToUnixDays converts a raw Date cell value (days since 0001-01-01)
// to days since the Unix epoch.
func DateRawToUnixDays(raw int32) int64 {
	return int64(raw) - epochOffsetDays
}

// ValidDateRaw reports whether raw falls within the sanity window Date
// cells are held to; values outside it are treated as Null rather than
// decoded, as a defensive filter against corrupt or sentinel data.
func ValidDateRaw(raw int32) bool {
	return raw > 0 && raw <= 3_000_000
}

// TimestampRawToUnixSeconds converts a raw Timestamp cell value
// (milliseconds since 0001-01-01 00:00) to seconds since the Unix epoch.
func TimestampRawToUnixSeconds(rawMillis float64) float64 {
	return rawMillis/1000 - float64(epochOffsetDays)*86400
}

// TimeRawToSeconds converts a raw Time cell value (milliseconds since
// midnight) to seconds since midnight.
func TimeRawToSeconds(rawMillis int32) float64 {
	return float64(rawMillis) / 1000.0
}
