// Package translate localizes the user-facing message strings for lminc.
// Every error and prompt string in the assembler, machine, and runner
// packages is routed through From, so a message catalog can translate them
// without touching the call sites.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("lminc: locale: %v", err)
	}

	// en-US is the catalog source language.
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From translates an en-US Sprintf() format into the user's locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
