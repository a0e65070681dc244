package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	skipPromptFormat    = "Skip contents of %q directories? [Y/n] "
	invalidAnswerPrompt = "Please answer y or n: "
)

var errPromptClosed = errors.New("prompt input closed before an answer was given")

// terminalPrompter asks on writer and reads answers line by line from reader.
// An empty answer means yes.
type terminalPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func newTerminalPrompter(reader io.Reader, writer io.Writer) *terminalPrompter {
	return &terminalPrompter{reader: bufio.NewReader(reader), writer: writer}
}

func (prompter *terminalPrompter) ShouldSkip(ctx context.Context, directoryName string) (bool, error) {
	if contextError := ctx.Err(); contextError != nil {
		return false, contextError
	}
	fmt.Fprintf(prompter.writer, skipPromptFormat, directoryName)
	for {
		line, readError := prompter.reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if readError != nil && (answer == "" || !errors.Is(readError, io.EOF)) {
			if errors.Is(readError, io.EOF) {
				return false, errPromptClosed
			}
			return false, fmt.Errorf("read answer for %q: %w", directoryName, readError)
		}
		if answer == "" {
			return true, nil
		}
		if skip, known := parseBooleanLiteral(answer); known {
			return skip, nil
		}
		if readError != nil {
			return false, errPromptClosed
		}
		fmt.Fprint(prompter.writer, invalidAnswerPrompt)
	}
}
