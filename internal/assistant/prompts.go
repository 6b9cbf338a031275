package assistant

import (
	"fmt"
	"unicode/utf8"
)

const askTemplate = `You are legal compliance AI.

Contract:

%s

Question:

%s

Answer professionally:
`

const improveTemplate = `Improve this contract and make it compliant:

%s
`

// askPrompt embeds the truncated contract and the user question into the
// chat instruction template.
func askPrompt(contract, question string, maxChars int) string {
	return fmt.Sprintf(askTemplate, truncate(contract, maxChars), question)
}

// improvePrompt embeds the truncated contract into the improve instruction
// template. The two templates differ only in instruction text.
func improvePrompt(contract string, maxChars int) string {
	return fmt.Sprintf(improveTemplate, truncate(contract, maxChars))
}

// truncate cuts text to at most max bytes. When the cut lands inside a
// multibyte rune it backs off to the rune's start, at most utf8.UTFMax-1
// bytes, so the prompt never ends on a torn sequence. Invalid bytes earlier
// in the text pass through untouched.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}

	cut := max
	for cut > 0 && max-cut < utf8.UTFMax-1 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	if !utf8.RuneStart(text[cut]) {
		cut = max
	}
	return text[:cut]
}
