package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultAPIEndpoint is the public Google Translate endpoint used by browser extensions.
	DefaultAPIEndpoint = "https://translate.googleapis.com/translate_a/single"

	apiClientName          = "gtx"
	apiDataType            = "t"
	maxResponseBytes int64 = 1 << 20
	requestTimeout         = 15 * time.Second
	userAgentValue         = "dummie-translate"
)

type httpClient interface {
	Do(request *http.Request) (*http.Response, error)
}

// RetryPolicy bounds retries of throttled or failing API calls.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultRetryPolicy returns the retry settings used by NewAPIClient.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, BaseDelay: 500 * time.Millisecond, MaxDelay: 5 * time.Second}
}

// APIClient calls the translation HTTP API.
type APIClient struct {
	client   httpClient
	endpoint string
	retry    RetryPolicy
}

// NewAPIClient returns an APIClient backed by the provided HTTP client or a default client when nil.
func NewAPIClient(client httpClient, endpoint string, retry RetryPolicy) *APIClient {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultAPIEndpoint
	}
	return &APIClient{client: client, endpoint: endpoint, retry: retry}
}

// StatusError reports a non-successful API reply.
type StatusError struct {
	StatusCode int
	Body       string
	Retries    int
}

func (statusError *StatusError) Error() string {
	if statusError.Retries > 0 {
		return fmt.Sprintf("translation API error (HTTP %d) after %d retries: %s", statusError.StatusCode, statusError.Retries, statusError.Body)
	}
	return fmt.Sprintf("translation API error (HTTP %d): %s", statusError.StatusCode, statusError.Body)
}

// Translate sends the request to the API and joins the translated segments.
func (client *APIClient) Translate(ctx context.Context, request Request) (string, error) {
	normalized, validationError := request.Normalize()
	if validationError != nil {
		return "", validationError
	}
	requestURL, urlError := client.buildURL(normalized)
	if urlError != nil {
		return "", urlError
	}

	var lastError error
	for attempt := 0; attempt <= client.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("translation canceled during retry: %w", ctx.Err())
			case <-time.After(backoffDelay(attempt-1, client.retry)):
			}
		}
		translated, retryable, attemptError := client.attempt(ctx, requestURL)
		if attemptError == nil {
			return translated, nil
		}
		lastError = attemptError
		if !retryable {
			return "", attemptError
		}
	}
	var statusError *StatusError
	if errors.As(lastError, &statusError) {
		statusError.Retries = client.retry.MaxRetries
	}
	return "", lastError
}

func (client *APIClient) buildURL(request Request) (string, error) {
	parsedEndpoint, parseError := url.Parse(client.endpoint)
	if parseError != nil {
		return "", fmt.Errorf("parse translation endpoint: %w", parseError)
	}
	query := parsedEndpoint.Query()
	query.Set("client", apiClientName)
	query.Set("dt", apiDataType)
	query.Set("sl", request.From)
	query.Set("tl", request.To)
	query.Set("q", request.Text)
	parsedEndpoint.RawQuery = query.Encode()
	return parsedEndpoint.String(), nil
}

// attempt performs one API call. The boolean reports whether a failure may be retried.
func (client *APIClient) attempt(ctx context.Context, requestURL string) (string, bool, error) {
	httpRequest, requestError := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if requestError != nil {
		return "", false, fmt.Errorf("create translation request: %w", requestError)
	}
	httpRequest.Header.Set("User-Agent", userAgentValue)
	httpRequest.Header.Set("Accept", "application/json")

	response, responseError := client.client.Do(httpRequest)
	if responseError != nil {
		if ctx.Err() != nil {
			return "", false, fmt.Errorf("translation request: %w", responseError)
		}
		return "", true, fmt.Errorf("translation request: %w", responseError)
	}
	defer response.Body.Close()

	body, readError := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if readError != nil {
		return "", true, fmt.Errorf("read translation response: %w", readError)
	}
	switch {
	case response.StatusCode >= 200 && response.StatusCode < 300:
	case response.StatusCode == http.StatusTooManyRequests, response.StatusCode >= 500:
		return "", true, &StatusError{StatusCode: response.StatusCode, Body: strings.TrimSpace(string(body))}
	default:
		return "", false, &StatusError{StatusCode: response.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	translated, parseError := parseSegments(body)
	if parseError != nil {
		return "", false, parseError
	}
	return translated, false, nil
}

// parseSegments extracts the translated text from the nested array reply
// [[["translated","original",...],...],...].
func parseSegments(body []byte) (string, error) {
	var reply []json.RawMessage
	if decodeError := json.Unmarshal(body, &reply); decodeError != nil {
		return "", fmt.Errorf("decode translation response: %w", decodeError)
	}
	if len(reply) == 0 {
		return "", ErrEmptyTranslation
	}
	var segments [][]json.RawMessage
	if decodeError := json.Unmarshal(reply[0], &segments); decodeError != nil {
		return "", fmt.Errorf("decode translation segments: %w", decodeError)
	}
	var builder strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var text string
		if decodeError := json.Unmarshal(segment[0], &text); decodeError != nil {
			continue
		}
		builder.WriteString(text)
	}
	if builder.Len() == 0 {
		return "", ErrEmptyTranslation
	}
	return builder.String(), nil
}

// backoffDelay calculates the delay for a given attempt using exponential backoff with jitter.
func backoffDelay(attempt int, policy RetryPolicy) time.Duration {
	delay := policy.BaseDelay << attempt
	if policy.BaseDelay > 0 {
		delay += time.Duration(rand.Int63n(int64(policy.BaseDelay)))
	}
	if policy.MaxDelay > 0 && delay > policy.MaxDelay {
		delay = policy.MaxDelay
	}
	return delay
}
