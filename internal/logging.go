package internal

import (
	"io"
	"log"
)

// InitLogging routes the standard logger to w. Informational logging is
// discarded unless verbose is set.
func InitLogging(w io.Writer, verbose bool) {
	if !verbose {
		w = io.Discard
	}
	log.SetOutput(w)
	log.SetPrefix("routes: ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
