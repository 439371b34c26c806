package jiramsg

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// gitDir is the metadata directory the commit message files live in. Git
// invokes commit-msg hooks from the repository root, so a fixed relative
// path is sufficient and no caller-supplied directory component is ever
// used to build it.
const gitDir = ".git"

// allowedMessageFiles are the commit message filenames git passes to
// commit-msg hooks.
var allowedMessageFiles = map[string]struct{}{
	"COMMIT_EDITMSG": {},
	"MERGE_MSG":      {},
	"SQUASH_MSG":     {},
	"TAG_EDITMSG":    {},
}

// resolveMessageFile resolves rawArg to a trusted commit message path.
// Only the basename of the argument is used; directory components are
// discarded so an attacker-influenced argument cannot traverse outside the
// git directory. Errors echo the rejected basename only, never the raw
// argument.
func resolveMessageFile(rawArg string) (string, error) {
	basename := filepath.Base(rawArg)

	_, ok := allowedMessageFiles[basename]
	if !ok {
		return "", unrecognizedFileError(basename)
	}

	path := filepath.Join(gitDir, basename)

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", unrecognizedFileError(basename)
	}

	return path, nil
}

// unrecognizedFileError names the rejected basename and lists the allowed
// filenames.
func unrecognizedFileError(basename string) error {
	names := make([]string, 0, len(allowedMessageFiles))
	for name := range allowedMessageFiles {
		names = append(names, name)
	}

	sort.Strings(names)

	return fmt.Errorf(
		"'%s' is not a recognized git commit message file.\n  Expected one of: %s",
		basename,
		strings.Join(names, ", "),
	)
}
