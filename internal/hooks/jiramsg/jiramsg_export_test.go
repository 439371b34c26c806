package jiramsg

// Test helpers - exported for testing only

// ResolveMessageFileForTesting exposes resolveMessageFile for testing.
func ResolveMessageFileForTesting(rawArg string) (string, error) {
	return resolveMessageFile(rawArg)
}
