package linenoise

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"
)

// ErrAborted is returned by Prompt when the user pressed Ctrl-C.
var ErrAborted = liner.ErrPromptAborted

type LineNoise struct {
	*liner.State
}

// New puts the terminal in line editing mode. Close must be called to
// restore it.
func New() *LineNoise {
	ln := &LineNoise{liner.NewLiner()}
	ln.SetCtrlCAborts(true)
	return ln
}

func (ln *LineNoise) HistoryLoad(filepath string) error {
	content, err := os.ReadFile(filepath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = ln.ReadHistory(bytes.NewReader(content))
	return err
}

func (ln *LineNoise) HistorySave(filepath string) error {
	var buf bytes.Buffer
	_, err := ln.WriteHistory(&buf)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}

func (ln *LineNoise) ClearScreen(out io.Writer) error {
	_, err := fmt.Fprint(out, "\x1b[H\x1b[2J")
	return err
}

// SetWordCompletion completes the first word of the line from words,
// case-insensitively. Completions keep the case the user started typing in.
func (ln *LineNoise) SetWordCompletion(words []string) {
	ln.SetCompleter(CompleteWords(words))
}

// CompleteWords returns a liner completer over words.
func CompleteWords(words []string) liner.Completer {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	return func(line string) []string {
		if strings.ContainsAny(line, " \t") {
			return nil
		}
		lower := strings.ToLower(line)
		upper := line != lower

		var out []string
		for _, w := range sorted {
			if !strings.HasPrefix(strings.ToLower(w), lower) {
				continue
			}
			if upper {
				out = append(out, strings.ToUpper(w))
			} else {
				out = append(out, strings.ToLower(w))
			}
		}
		return out
	}
}
