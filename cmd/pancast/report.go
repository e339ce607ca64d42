package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/KirkDiggler/pancasting/internal/errors"
)

// Exit codes
const (
	exitFailure     = 1
	exitInvalid     = 2
	exitNotFound    = 3
	exitNotAllowed  = 4
	exitCorrupt     = 5
	exitUnavailable = 6
)

// report writes err for a terminal user and returns the process exit code.
// Uncoded errors, mostly cobra flag errors, are printed as they are.
func report(w io.Writer, err error) int {
	var coded *errors.Error
	if !errors.As(err, &coded) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitFailure
	}

	msg := errors.GetMessage(err)
	switch {
	case errors.IsInvalidArgument(err):
		fmt.Fprintf(w, "Invalid input: %s\n", msg)
		printFieldErrors(w, errors.GetMeta(err))
		return exitInvalid
	case errors.IsNotFound(err):
		fmt.Fprintf(w, "Not found: %s\n", msg)
		return exitNotFound
	case errors.IsFailedPrecondition(err):
		fmt.Fprintf(w, "Not allowed: %s\n", msg)
		return exitNotAllowed
	case errors.IsDataLoss(err):
		fmt.Fprintf(w, "Stored data is unreadable: %s\n", msg)
		fmt.Fprintln(w, "Re-import the character from an exported JSON file.")
		return exitCorrupt
	case errors.IsUnavailable(err):
		fmt.Fprintf(w, "Storage unavailable: %s\n", msg)
		fmt.Fprintln(w, "Check PANCAST_STORE_BACKEND and the backend's address or path.")
		return exitUnavailable
	case errors.IsInternal(err):
		fmt.Fprintf(w, "Internal error: %v\n", err)
		return exitFailure
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitFailure
	}
}

func printFieldErrors(w io.Writer, meta map[string]any) {
	fields, ok := meta["validation_errors"].(map[string][]string)
	if !ok {
		return
	}
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(fields[name], ", "))
	}
}
