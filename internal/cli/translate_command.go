package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dummie/internal/output"
	"github.com/temirov/dummie/internal/translate"
	"github.com/temirov/dummie/internal/types"
)

const (
	translateUse              = types.CommandTranslate + " <text>"
	translateAlias            = "tr"
	translateShortDescription = "translate text (" + translateAlias + ")"
	translateLongDescription  = `Translate text with the public translation API.
When the API call fails the text is translated by loading the translation web page in headless Chrome.
Use browser-detect to see which Chrome executable would be used.`
	translateUsageExample = `  # English to Vietnamese
  dummie translate "good morning"

  # French to German without the browser fallback
  dummie translate -f fr -t de --browser=false "bonjour"`

	fromFlagName        = "from"
	fromFlagShorthand   = "f"
	toFlagName          = "to"
	toFlagShorthand     = "t"
	timeoutFlagName     = "timeout"
	browserFlagName     = "browser"
	fromFlagDescription = "source language code"
	toFlagDescription   = "target language code"
	timeoutDescription  = "overall time limit for the translation"
	browserDescription  = "fall back to headless Chrome when the API fails"

	translationErrorFormat = "Translation error: %w"
	invalidTimeoutMessage  = "invalid timeout '%s': %w"
)

type translateOptions struct {
	from       string
	to         string
	timeout    time.Duration
	browser    bool
	format     string
	copyOutput bool
}

// createTranslateCommand returns the translate subcommand.
func (app *application) createTranslateCommand() *cobra.Command {
	var options translateOptions

	translateCommand := &cobra.Command{
		Use:     translateUse,
		Aliases: []string{translateAlias},
		Short:   translateShortDescription,
		Long:    translateLongDescription,
		Example: translateUsageExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return app.runTranslate(command, strings.Join(arguments, " "), options)
		},
	}

	translateCommand.Flags().StringVarP(&options.from, fromFlagName, fromFlagShorthand, translate.DefaultSourceLanguage, fromFlagDescription)
	translateCommand.Flags().StringVarP(&options.to, toFlagName, toFlagShorthand, translate.DefaultTargetLanguage, toFlagDescription)
	translateCommand.Flags().DurationVar(&options.timeout, timeoutFlagName, translate.DefaultBrowserTimeout, timeoutDescription)
	registerBooleanFlag(translateCommand.Flags(), &options.browser, browserFlagName, true, browserDescription)
	translateCommand.Flags().StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerCopyFlag(translateCommand.Flags(), &options.copyOutput)
	return translateCommand
}

func (app *application) runTranslate(command *cobra.Command, text string, options translateOptions) error {
	settings := app.configuration.Translate

	format := strings.ToLower(stringSetting(command, formatFlagName, options.format, settings.Format))
	if !output.IsSupportedFormat(format) {
		return fmt.Errorf(invalidFormatMessage, format)
	}
	timeout := options.timeout
	if !command.Flags().Changed(timeoutFlagName) && settings.Timeout != "" {
		parsedTimeout, parseError := time.ParseDuration(settings.Timeout)
		if parseError != nil {
			return fmt.Errorf(invalidTimeoutMessage, settings.Timeout, parseError)
		}
		timeout = parsedTimeout
	}

	request, requestError := translate.Request{
		Text: text,
		From: stringSetting(command, fromFlagName, options.from, settings.From),
		To:   stringSetting(command, toFlagName, options.to, settings.To),
	}.Normalize()
	if requestError != nil {
		return fmt.Errorf(translationErrorFormat, requestError)
	}

	var secondary translate.Translator
	if boolSetting(command, browserFlagName, options.browser, settings.Browser) {
		secondary = app.dependencies.newBrowser(translate.BrowserOptions{
			ExecutablePath: app.chromeExecutable(),
			Timeout:        timeout,
		})
	}
	translator := translate.NewFallbackTranslator(
		translate.NewAPIClient(app.dependencies.httpClient, settings.Endpoint, translate.DefaultRetryPolicy()),
		secondary,
		app.logger,
	)

	ctx, cancel := context.WithTimeout(command.Context(), timeout)
	defer cancel()
	result, translateError := translator.Translate(ctx, request)
	if translateError != nil {
		return fmt.Errorf(translationErrorFormat, translateError)
	}
	app.logger.Debug("translation complete", zap.String("source", result.Source))

	rendered, renderError := output.RenderTranslation(format, types.TranslationOutput{
		Text:       request.Text,
		From:       request.From,
		To:         request.To,
		Translated: result.Text,
		Source:     result.Source,
	})
	if renderError != nil {
		return renderError
	}
	return app.emit(command, rendered, boolSetting(command, copyFlagName, options.copyOutput, settings.Clipboard))
}

// chromeExecutable returns the configured Chrome path or the discovered one; empty lets chromedp search.
func (app *application) chromeExecutable() string {
	if app.configuration.Translate.ChromePath != "" {
		return app.configuration.Translate.ChromePath
	}
	location := app.dependencies.locateChrome()
	if location.Discovered {
		return location.Path
	}
	return ""
}
