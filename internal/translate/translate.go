// Package translate translates text through the public Google Translate API,
// falling back to scraping the translation web page in headless Chrome.
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultSourceLanguage is used when no source language is supplied.
	DefaultSourceLanguage = "en"
	// DefaultTargetLanguage is used when no target language is supplied.
	DefaultTargetLanguage = "vi"

	// SourceAPI names results produced by the HTTP API.
	SourceAPI = "api"
	// SourceBrowser names results scraped from the web page.
	SourceBrowser = "browser"
)

var (
	// ErrEmptyText reports a request without any text to translate.
	ErrEmptyText = errors.New("text to translate is empty")
	// ErrEmptyTranslation reports a reply that carried no translated text.
	ErrEmptyTranslation = errors.New("translation result is empty")
)

// Request identifies the text and languages of a translation.
type Request struct {
	Text string
	From string
	To   string
}

// Normalize trims the request and applies default languages.
func (request Request) Normalize() (Request, error) {
	normalized := Request{
		Text: strings.TrimSpace(request.Text),
		From: strings.ToLower(strings.TrimSpace(request.From)),
		To:   strings.ToLower(strings.TrimSpace(request.To)),
	}
	if normalized.Text == "" {
		return Request{}, ErrEmptyText
	}
	if normalized.From == "" {
		normalized.From = DefaultSourceLanguage
	}
	if normalized.To == "" {
		normalized.To = DefaultTargetLanguage
	}
	return normalized, nil
}

// Translator translates a request into the target language.
type Translator interface {
	Translate(ctx context.Context, request Request) (string, error)
}

// Result carries a translation and the backend that produced it.
type Result struct {
	Text   string
	Source string
}

// FallbackTranslator tries the primary translator and falls back to the secondary one.
type FallbackTranslator struct {
	primary   Translator
	secondary Translator
	logger    *zap.Logger
}

// NewFallbackTranslator wires a primary and a fallback translator.
func NewFallbackTranslator(primary Translator, secondary Translator, logger *zap.Logger) *FallbackTranslator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackTranslator{primary: primary, secondary: secondary, logger: logger}
}

// Translate returns the primary translation, or the fallback translation when the primary fails.
func (translator *FallbackTranslator) Translate(ctx context.Context, request Request) (Result, error) {
	normalized, validationError := request.Normalize()
	if validationError != nil {
		return Result{}, validationError
	}

	translated, primaryError := translator.primary.Translate(ctx, normalized)
	if primaryError == nil {
		return Result{Text: translated, Source: SourceAPI}, nil
	}
	if translator.secondary == nil {
		return Result{}, fmt.Errorf("http translation failed: %w", primaryError)
	}
	translator.logger.Warn("HTTP translate failed, falling back to browser", zap.Error(primaryError))

	translated, secondaryError := translator.secondary.Translate(ctx, normalized)
	if secondaryError != nil {
		return Result{}, errors.Join(
			fmt.Errorf("http translation failed: %w", primaryError),
			fmt.Errorf("browser translation failed: %w", secondaryError),
		)
	}
	return Result{Text: translated, Source: SourceBrowser}, nil
}
