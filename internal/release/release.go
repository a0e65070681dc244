// Package release looks up the newest published version of the module.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
)

const (
	// DefaultProxyURL is the public Go module proxy.
	DefaultProxyURL = "https://proxy.golang.org"

	latestPathFormat       = "%s/%s/@latest"
	maxResponseBytes int64 = 64 << 10
	requestTimeout         = 10 * time.Second
)

var errMissingVersion = errors.New("module proxy reply has no version")

type httpClient interface {
	Do(request *http.Request) (*http.Response, error)
}

// Checker queries a module proxy for the latest version of a module.
type Checker struct {
	client   httpClient
	proxyURL string
}

// NewChecker returns a Checker backed by the provided HTTP client or a default client when nil.
func NewChecker(client httpClient, proxyURL string) Checker {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	if strings.TrimSpace(proxyURL) == "" {
		proxyURL = DefaultProxyURL
	}
	return Checker{client: client, proxyURL: strings.TrimRight(proxyURL, "/")}
}

// Status compares the running version against the latest published one.
type Status struct {
	Current  string
	Latest   string
	UpToDate bool
}

// LatestVersion returns the version the proxy reports as latest for modulePath.
func (checker Checker) LatestVersion(ctx context.Context, modulePath string) (string, error) {
	escapedPath, escapeError := module.EscapePath(modulePath)
	if escapeError != nil {
		return "", fmt.Errorf("escape module path %s: %w", modulePath, escapeError)
	}
	requestURL := fmt.Sprintf(latestPathFormat, checker.proxyURL, escapedPath)
	request, requestError := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if requestError != nil {
		return "", fmt.Errorf("create request: %w", requestError)
	}
	response, responseError := checker.client.Do(request)
	if responseError != nil {
		return "", fmt.Errorf("query %s: %w", requestURL, responseError)
	}
	defer response.Body.Close()

	body, readError := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if readError != nil {
		return "", fmt.Errorf("read %s: %w", requestURL, readError)
	}
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("query %s: HTTP %d: %s", requestURL, response.StatusCode, strings.TrimSpace(string(body)))
	}
	var reply struct {
		Version string `json:"Version"`
	}
	if decodeError := json.Unmarshal(body, &reply); decodeError != nil {
		return "", fmt.Errorf("decode %s: %w", requestURL, decodeError)
	}
	if !semver.IsValid(reply.Version) {
		return "", fmt.Errorf("%w: %q", errMissingVersion, reply.Version)
	}
	return reply.Version, nil
}

// Check fetches the latest version and compares it with current.
func (checker Checker) Check(ctx context.Context, modulePath string, current string) (Status, error) {
	latest, latestError := checker.LatestVersion(ctx, modulePath)
	if latestError != nil {
		return Status{}, latestError
	}
	return Compare(current, latest), nil
}

// Compare reports whether current is at least latest. An invalid current
// version (a development build) is never up to date.
func Compare(current string, latest string) Status {
	normalizedCurrent := current
	if normalizedCurrent != "" && !strings.HasPrefix(normalizedCurrent, "v") {
		normalizedCurrent = "v" + normalizedCurrent
	}
	upToDate := semver.IsValid(normalizedCurrent) && semver.Compare(normalizedCurrent, latest) >= 0
	return Status{Current: current, Latest: latest, UpToDate: upToDate}
}
