package placeholder

import (
	"errors"
	"strings"

	"devcli/internal/logger"
)

// Recognized tokens, expanded in this order.
const (
	PathToken = "{{path}}"
	NameToken = "{{name}}"
)

// Tokens lists every placeholder a catalog command may carry.
var Tokens = []string{PathToken, NameToken}

// ErrNoInput is returned when input ends before a replacement value was entered.
var ErrNoInput = errors.New("no input for placeholder")

// segment is either literal text or one occurrence of a token.
type segment struct {
	text  string
	token string
}

// split breaks command into literal and token segments. Token text is matched
// once against the original command, so replacement values are never rescanned.
func split(command string, tokens ...string) []segment {
	var segs []segment
	for command != "" {
		at, token := -1, ""
		for _, t := range tokens {
			if i := strings.Index(command, t); i >= 0 && (at < 0 || i < at) {
				at, token = i, t
			}
		}
		if at < 0 {
			break
		}
		if at > 0 {
			segs = append(segs, segment{text: command[:at]})
		}
		segs = append(segs, segment{text: token, token: token})
		command = command[at+len(token):]
	}
	if command != "" {
		segs = append(segs, segment{text: command})
	}
	return segs
}

func join(segs []segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.text)
	}
	return b.String()
}

// Contains reports whether command carries any recognized token.
func Contains(command string) bool {
	for _, token := range Tokens {
		if strings.Contains(command, token) {
			return true
		}
	}
	return false
}

// Substitute replaces every occurrence of token with value.
// found is false when command has no occurrence of token.
func Substitute(command, token, value string) (result string, found bool) {
	segs := split(command, token)
	for i := range segs {
		if segs[i].token != "" {
			segs[i] = segment{text: value}
			found = true
		}
	}
	return join(segs), found
}

// Prompter asks the user for a single replacement value.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Expander fills placeholders interactively.
type Expander struct {
	prompter Prompter
}

// NewExpander creates an Expander that asks prompter for every occurrence.
func NewExpander(prompter Prompter) *Expander {
	return &Expander{prompter: prompter}
}

// Expand prompts once per token occurrence, left to right, {{path}} before {{name}}.
// Entering the token itself cancels the expansion and the original command is
// returned verbatim. A command with no tokens is returned without prompting.
func (e *Expander) Expand(command string) (string, error) {
	segs := split(command, Tokens...)
	for _, token := range Tokens {
		for i, seg := range segs {
			if seg.token != token {
				continue
			}
			value, err := e.prompter.Prompt(label(token))
			if err != nil {
				return command, err
			}
			if value == token {
				logger.Warn("[WARN] Invalid value for %s. Using original command.\n", token)
				return command, nil
			}
			segs[i] = segment{text: value}
		}
	}
	result := join(segs)
	if result != command {
		logger.Debug("[DEBUG] Placeholders replaced: %s\n", result)
	}
	return result, nil
}

func label(token string) string {
	switch token {
	case PathToken:
		return "Enter the path: "
	case NameToken:
		return "Enter the name: "
	}
	return "Enter a value for " + token + ": "
}
