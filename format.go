package main

import (
	"strconv"
	"strings"
	"time"
)

// The backend tags metadata values that are really UTC instants rather than
// opaque text. The tag carries epoch milliseconds as a float.
const (
	timeTag = "[__TIME__]"
	dateTag = "[__DATE__]"
)

// displayMetaValue turns a metadata value into display text. Tagged values
// are decoded to UTC; anything else (including a tagged value that fails to
// parse) passes through unchanged.
func displayMetaValue(raw string) string {
	switch {
	case strings.HasPrefix(raw, timeTag):
		if iso, ok := decodeTaggedInstant(raw, timeTag); ok {
			_, t, _ := strings.Cut(iso, "T")
			return t
		}
	case strings.HasPrefix(raw, dateTag):
		if iso, ok := decodeTaggedInstant(raw, dateTag); ok {
			d, _, _ := strings.Cut(iso, "T")
			return d
		}
	}
	return raw
}

// decodeTaggedInstant strips the tag, parses epoch milliseconds and formats
// the instant as an isoformat string with the zone marker dropped. The UTC
// offset is fixed at zero so two machines never disagree on the rendering.
func decodeTaggedInstant(raw, tag string) (string, bool) {
	ms, err := strconv.ParseFloat(strings.TrimPrefix(raw, tag), 64)
	if err != nil {
		return "", false
	}
	t := time.UnixMilli(int64(ms)).UTC()
	iso := t.Format("2006-01-02T15:04:05Z")
	return strings.TrimSuffix(iso, "Z"), true
}

// formatAxisInstant labels a zoom endpoint on the primary (time) axis.
func formatAxisInstant(epochMillis float64) string {
	t := time.UnixMilli(int64(epochMillis)).UTC()
	return t.Format("15:04:05.000")
}
