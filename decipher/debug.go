package decipher

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
)

// Debugging is switched by the environment: LETTERWORLD_DEBUG turns on
// DPrintf and assertions, and LETTERWORLD_DUMP additionally makes sdump
// render full structures into the log.
var (
	debug = os.Getenv("LETTERWORLD_DEBUG") != ""
	dump  = os.Getenv("LETTERWORLD_DUMP") != ""
)

func IsDebug() bool {
	return debug
}

func IsDump() bool {
	return dump
}

func DPrintf(format string, a ...interface{}) {
	if debug {
		log.SetFlags(log.Lmicroseconds)
		log.Printf(format, a...)
	}
}

// assertf panics when a debug-mode invariant does not hold. Outside debug
// mode it never panics.
func assertf(condition bool, format string, a ...interface{}) {
	if debug && !condition {
		panic(fmt.Sprintf(format, a...))
	}
}

// sdump renders v for debug logs, and renders nothing unless dumps are on.
func sdump(v interface{}) string {
	if !dump {
		return ""
	}
	return "\n\n" + spew.Sdump(v)
}
