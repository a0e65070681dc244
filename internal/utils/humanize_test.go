package utils_test

import (
	"testing"
	"time"

	"github.com/temirov/dummie/internal/utils"
)

func TestFormatFileSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "negative", bytes: -1, expected: "0b"},
		{name: "zero", bytes: 0, expected: "0b"},
		{name: "bytes", bytes: 512, expected: "512b"},
		{name: "one kilobyte", bytes: 1024, expected: "1kb"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5kb"},
		{name: "ten megabytes", bytes: 10 * 1024 * 1024, expected: "10mb"},
		{name: "rounded gigabytes", bytes: 300 * 1024 * 1024 * 1024, expected: "300gb"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if result := utils.FormatFileSize(testCase.bytes); result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

func TestFormatModificationTime(t *testing.T) {
	if result := utils.FormatModificationTime(time.Time{}); result != "" {
		t.Fatalf("expected empty string for zero time, got %q", result)
	}
	value := time.Date(2024, time.January, 2, 15, 4, 59, 0, time.Local)
	if result := utils.FormatModificationTime(value); result != "2024-01-02 15:04" {
		t.Fatalf("unexpected timestamp %q", result)
	}
}
