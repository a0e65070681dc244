package translate

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

func TestBrowserClientBuildsPageURL(testingHandle *testing.T) {
	client := NewBrowserClient(BrowserOptions{})
	var requestedURL string
	client.scrape = func(_ context.Context, pageURL string) (string, error) {
		requestedURL = pageURL
		return "  xin chào \n", nil
	}
	translated, translateError := client.Translate(context.Background(), Request{Text: "hello world", From: "en", To: "vi"})
	if translateError != nil {
		testingHandle.Fatalf("unexpected error: %v", translateError)
	}
	if translated != "xin chào" {
		testingHandle.Fatalf("expected trimmed translation, got %q", translated)
	}
	parsed, parseError := url.Parse(requestedURL)
	if parseError != nil {
		testingHandle.Fatalf("parse requested url: %v", parseError)
	}
	query := parsed.Query()
	if parsed.Host != "translate.google.com" || query.Get("text") != "hello world" || query.Get("sl") != "en" || query.Get("tl") != "vi" || query.Get("op") != "translate" {
		testingHandle.Fatalf("unexpected page url %s", requestedURL)
	}
}

func TestBrowserClientRejectsEmptyPage(testingHandle *testing.T) {
	client := NewBrowserClient(BrowserOptions{})
	client.scrape = func(context.Context, string) (string, error) {
		return "", nil
	}
	if _, translateError := client.Translate(context.Background(), Request{Text: "hello"}); !errors.Is(translateError, ErrEmptyTranslation) {
		testingHandle.Fatalf("expected ErrEmptyTranslation, got %v", translateError)
	}
}

func TestBrowserClientBoundsSession(testingHandle *testing.T) {
	client := NewBrowserClient(BrowserOptions{Timeout: 1})
	client.scrape = func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if _, translateError := client.Translate(context.Background(), Request{Text: "hello"}); !errors.Is(translateError, context.DeadlineExceeded) {
		testingHandle.Fatalf("expected deadline error, got %v", translateError)
	}
}

func TestLocateChrome(testingHandle *testing.T) {
	directory := testingHandle.TempDir()
	installed := filepath.Join(directory, "chrome")
	if writeError := os.WriteFile(installed, []byte("#!/bin/sh\n"), 0o755); writeError != nil {
		testingHandle.Fatalf("write fake chrome: %v", writeError)
	}
	missing := filepath.Join(directory, "missing-chrome")

	fromEnv := locateChrome(installed, []string{missing})
	if !fromEnv.FromEnv || !fromEnv.Discovered || fromEnv.Path != installed {
		testingHandle.Fatalf("unexpected env location %+v", fromEnv)
	}
	discovered := locateChrome("", []string{missing, installed})
	if discovered.FromEnv || !discovered.Discovered || discovered.Path != installed {
		testingHandle.Fatalf("unexpected discovered location %+v", discovered)
	}
	fallback := locateChrome("", []string{missing})
	if fallback.Discovered || fallback.Path != missing {
		testingHandle.Fatalf("unexpected fallback location %+v", fallback)
	}
	if len(ChromeCandidates("linux")) == 0 || len(ChromeCandidates("darwin")) == 0 {
		testingHandle.Fatalf("expected candidates for linux and darwin")
	}
}
