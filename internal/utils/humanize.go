package utils

import (
	"strconv"
	"strings"
	"time"
)

const modificationTimeLayout = "2006-01-02 15:04"

var sizeUnits = []string{"b", "kb", "mb", "gb", "tb", "pb"}

// FormatFileSize renders a byte count with a lower-case binary unit, e.g. 512b, 1.5kb, 10mb.
// Values below ten keep one decimal; negative counts render as 0b.
func FormatFileSize(byteCount int64) string {
	if byteCount < 1024 {
		return strconv.FormatInt(max(byteCount, 0), 10) + sizeUnits[0]
	}
	scaled := float64(byteCount)
	unitIndex := 0
	for scaled >= 1024 && unitIndex < len(sizeUnits)-1 {
		scaled /= 1024
		unitIndex++
	}
	precision := 0
	if scaled < 10 {
		precision = 1
	}
	formatted := strings.TrimSuffix(strconv.FormatFloat(scaled, 'f', precision, 64), ".0")
	return formatted + sizeUnits[unitIndex]
}

// FormatModificationTime renders a modification time in the local zone to the minute.
func FormatModificationTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.In(time.Local).Format(modificationTimeLayout)
}
