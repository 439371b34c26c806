package jiramsg

import (
	"fmt"
	"io"
	"os"
)

// usageText is printed when the hook is invoked without a commit message
// file argument.
const usageText = "Usage: commit-msg-check <commit-msg-file>"

// Run implements the commit-msg hook. args is the full argument vector
// including the program name, matching os.Args; the first argument is the
// path to the commit message file supplied by git. Diagnostics are written
// to stderr and the returned value is the process exit code.
func Run(args []string, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, usageText)
		return 1
	}

	path, err := resolveMessageFile(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	message, err := os.ReadFile(path)
	if err != nil {
		// The path passed the existence check, so this is unexpected.
		fmt.Fprintf(stderr, "Error: failed to read commit message file: %v\n", err)
		return 1
	}

	err = Validate(string(message))
	if err != nil {
		fmt.Fprintf(stderr, "\n❌ %v\n\n", err)
		return 1
	}

	return 0
}
