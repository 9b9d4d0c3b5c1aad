package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/mindful-ai-dude/multilingo/internal/language"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// readSecret is a test seam for term.ReadPassword.
var readSecret = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSecret prints a prompt and reads a value from the terminal without
// echo. Used for the Gemini API key.
func GetSecret(prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	secret, err := readSecret(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

// GetLanguage prompts until the user enters a recognizable language.
func GetLanguage(reader *bufio.Reader, prompt string, w io.Writer) (language.Language, error) {
	for {
		s, err := GetSimpleText(reader, prompt+" (tamazight/arabic/french/english)", w)
		if err != nil {
			return "", err
		}
		l, err := language.ParseLanguage(s)
		if err == nil {
			return l, nil
		}
		fmt.Fprintln(w, err.Error())
	}
}

// GetInt prompts for an integer within [min, max].
func GetInt(reader *bufio.Reader, prompt string, min, max int, w io.Writer) (int, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < min || n > max {
			fmt.Fprintf(w, "enter a number between %d and %d\n", min, max)
			continue
		}
		return n, nil
	}
}
