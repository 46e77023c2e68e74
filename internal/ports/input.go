package ports

// KeyReader supplies SSH public key material from the operator.
// Implementations may prompt interactively or return canned input in tests.
type KeyReader interface {
	// ReadKey prompts with the given message and returns one line of input
	// with the trailing newline stripped.
	ReadKey(prompt string) (string, error)
}
