package ui

import (
	"bufio"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Amr-9/ss58vanity/pkg/generator"
	"github.com/Amr-9/ss58vanity/pkg/generator/polkadot"
)

// readLine reads one line from reader. A final line without a newline is
// returned normally; the error is only reported once nothing is left.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetInputFromUser prompts for the vanity text and the fill character.
// It keeps asking until the text fits in an address. It returns the read
// error (io.EOF when input is closed) if no text could be read.
func GetInputFromUser(reader *bufio.Reader) (generator.Request, error) {
	fmt.Printf("    %s🎯 VANITY TEXT%s\n", ColorPurple+ColorBold, ColorReset)

	var text string
	for {
		fmt.Printf("    %sText%s (max %d): ", ColorCyan, ColorReset, polkadot.MaxVanity)
		line, err := readLine(reader)
		if err != nil {
			return generator.Request{}, err
		}
		text = line

		if n := utf8.RuneCountInString(text); n > polkadot.MaxVanity {
			fmt.Printf("    %s⚠ Too long! %d characters, max %d%s\n", ColorRed, n, polkadot.MaxVanity, ColorReset)
			continue
		}
		break
	}

	fmt.Printf("    %sFill%s (default %c): ", ColorCyan, ColorReset, polkadot.Marker)
	// a missing fill line falls back to the default fill
	fill, _ := readLine(reader)

	return generator.Request{
		Text: text,
		Fill: ParseFill(fill),
	}, nil
}

// ParseFill returns the first character of s, or the default fill if s is blank.
func ParseFill(s string) rune {
	s = strings.TrimSpace(s)
	if s == "" {
		return polkadot.Marker
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// AskToContinue prompts user to continue or exit. Closed input means exit.
func AskToContinue(reader *bufio.Reader) bool {
	fmt.Printf("\n    %s[Enter]%s Build another  │  %s[Q]%s Exit\n", ColorGreen, ColorReset, ColorRed, ColorReset)
	fmt.Printf("    %s→%s ", ColorCyan, ColorReset)
	input, err := readLine(reader)
	if err != nil {
		return false
	}
	input = strings.ToLower(input)
	return input != "q" && input != "quit" && input != "exit"
}
