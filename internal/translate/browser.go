package translate

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// DefaultPageURL is the translation web page scraped by the browser fallback.
	DefaultPageURL = "https://translate.google.com/"

	// TranslationSelector locates the rendered translation on the web page.
	TranslationSelector = `span[jsname="W297wb"]`

	// DefaultBrowserTimeout bounds the whole browser session.
	DefaultBrowserTimeout = 30 * time.Second
	// DefaultSelectorTimeout bounds the wait for the translated text to appear.
	DefaultSelectorTimeout = 5 * time.Second
)

type pageScraper func(ctx context.Context, pageURL string) (string, error)

// BrowserOptions configures the headless browser fallback.
type BrowserOptions struct {
	ExecutablePath  string
	PageURL         string
	Timeout         time.Duration
	SelectorTimeout time.Duration
}

// BrowserClient scrapes translations from the web page using headless Chrome.
type BrowserClient struct {
	options BrowserOptions
	scrape  pageScraper
}

// NewBrowserClient returns a BrowserClient driving Chrome through chromedp.
func NewBrowserClient(options BrowserOptions) *BrowserClient {
	if options.PageURL == "" {
		options.PageURL = DefaultPageURL
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultBrowserTimeout
	}
	if options.SelectorTimeout <= 0 {
		options.SelectorTimeout = DefaultSelectorTimeout
	}
	client := &BrowserClient{options: options}
	client.scrape = client.scrapeWithChrome
	return client
}

// Translate loads the translation page for the request and reads the rendered result.
func (client *BrowserClient) Translate(ctx context.Context, request Request) (string, error) {
	normalized, validationError := request.Normalize()
	if validationError != nil {
		return "", validationError
	}
	pageURL, urlError := client.pageURL(normalized)
	if urlError != nil {
		return "", urlError
	}
	sessionContext, cancel := context.WithTimeout(ctx, client.options.Timeout)
	defer cancel()

	translated, scrapeError := client.scrape(sessionContext, pageURL)
	if scrapeError != nil {
		return "", scrapeError
	}
	translated = strings.TrimSpace(translated)
	if translated == "" {
		return "", ErrEmptyTranslation
	}
	return translated, nil
}

func (client *BrowserClient) pageURL(request Request) (string, error) {
	parsedPage, parseError := url.Parse(client.options.PageURL)
	if parseError != nil {
		return "", fmt.Errorf("parse translation page url: %w", parseError)
	}
	query := parsedPage.Query()
	query.Set("sl", request.From)
	query.Set("tl", request.To)
	query.Set("text", request.Text)
	query.Set("op", "translate")
	parsedPage.RawQuery = query.Encode()
	return parsedPage.String(), nil
}

func (client *BrowserClient) scrapeWithChrome(ctx context.Context, pageURL string) (string, error) {
	allocatorOptions := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	if client.options.ExecutablePath != "" {
		allocatorOptions = append(allocatorOptions, chromedp.ExecPath(client.options.ExecutablePath))
	}
	allocatorContext, cancelAllocator := chromedp.NewExecAllocator(ctx, allocatorOptions...)
	defer cancelAllocator()
	browserContext, cancelBrowser := chromedp.NewContext(allocatorContext)
	defer cancelBrowser()

	if navigateError := chromedp.Run(browserContext, chromedp.Navigate(pageURL)); navigateError != nil {
		return "", fmt.Errorf("load %s: %w", pageURL, navigateError)
	}

	selectorContext, cancelSelector := context.WithTimeout(browserContext, client.options.SelectorTimeout)
	defer cancelSelector()
	var translated string
	if scrapeError := chromedp.Run(selectorContext,
		chromedp.WaitVisible(TranslationSelector, chromedp.ByQuery),
		chromedp.Text(TranslationSelector, &translated, chromedp.ByQuery),
	); scrapeError != nil {
		return "", fmt.Errorf("read translation from page: %w", scrapeError)
	}
	return translated, nil
}
