// Package translate formats user-visible messages for the locale of the
// user running the emulator.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the user locale cannot be determined.
const DEFAULT_LOCALE = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("quadcpu: locale: %v", err)
	}

	printer = newPrinter(locales)
}

func newPrinter(locales []string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf writes a translated en-US Fprintf() format to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
