package release

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLatestVersionQueriesProxy(testingHandle *testing.T) {
	testingHandle.Parallel()
	requestedPaths := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestedPaths <- request.URL.Path
		fmt.Fprint(writer, `{"Version":"v1.4.2","Time":"2026-01-02T03:04:05Z"}`)
	}))
	defer server.Close()

	checker := NewChecker(server.Client(), server.URL+"/")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	latest, latestError := checker.LatestVersion(ctx, "github.com/Example/Dummie")
	if latestError != nil {
		testingHandle.Fatalf("expected lookup to succeed, got %v", latestError)
	}
	if latest != "v1.4.2" {
		testingHandle.Fatalf("expected v1.4.2, got %s", latest)
	}
	if requestedPath := <-requestedPaths; requestedPath != "/github.com/!example/!dummie/@latest" {
		testingHandle.Fatalf("expected escaped module path, got %s", requestedPath)
	}
}

func TestLatestVersionReportsProxyErrors(testingHandle *testing.T) {
	testingHandle.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		fmt.Fprint(writer, "not found")
	}))
	defer server.Close()

	checker := NewChecker(server.Client(), server.URL)
	if _, latestError := checker.LatestVersion(context.Background(), "github.com/example/dummie"); latestError == nil {
		testingHandle.Fatalf("expected error for missing module")
	}
}

func TestCheckComparesVersions(testingHandle *testing.T) {
	testingHandle.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		fmt.Fprint(writer, `{"Version":"v0.3.0"}`)
	}))
	defer server.Close()

	status, checkError := NewChecker(server.Client(), server.URL).Check(context.Background(), "github.com/example/dummie", "v0.2.9")
	if checkError != nil {
		testingHandle.Fatalf("unexpected error: %v", checkError)
	}
	if status.UpToDate || status.Latest != "v0.3.0" {
		testingHandle.Fatalf("unexpected status %+v", status)
	}
}

func TestCompare(testingHandle *testing.T) {
	testCases := []struct {
		current  string
		latest   string
		expected bool
	}{
		{current: "v1.2.0", latest: "v1.2.0", expected: true},
		{current: "1.3.0", latest: "v1.2.0", expected: true},
		{current: "v1.1.9", latest: "v1.2.0", expected: false},
		{current: "unknown", latest: "v1.2.0", expected: false},
		{current: "", latest: "v1.2.0", expected: false},
	}
	for _, testCase := range testCases {
		if status := Compare(testCase.current, testCase.latest); status.UpToDate != testCase.expected {
			testingHandle.Fatalf("Compare(%q, %q) = %t, expected %t", testCase.current, testCase.latest, status.UpToDate, testCase.expected)
		}
	}
}
