package authkeys

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"

	"github.com/hostprep/hostprep/internal/domain/step"
	"github.com/hostprep/hostprep/internal/ports"
)

// keySource supplies the public key line. Static manifest keys and the
// interactive prompt both compile to one of these.
type keySource func() (string, error)

// KeyStep appends one SSH public key line to the authorized keys file if it
// is not already present. The key material is accepted verbatim: any
// non-empty line counts, no format validation is applied.
type KeyStep struct {
	path        string
	id          step.ID
	source      keySource
	interactive bool
	fs          ports.FileSystem
	logger      ports.Logger

	// key caches the source's answer so an interactive prompt asks once.
	key    string
	loaded bool
}

// NewKeyStep creates a step for a key known at compile time.
func NewKeyStep(path string, index int, key string, fs ports.FileSystem, logger ports.Logger) *KeyStep {
	return &KeyStep{
		path:   path,
		id:     step.MustNewID(fmt.Sprintf("authkeys:key:%d", index)),
		source: func() (string, error) { return key, nil },
		fs:     fs,
		logger: logger,
	}
}

// NewPromptStep creates a step that asks the operator for the key line.
// The prompt fires during Apply, never during Check, so check-only passes
// stay non-interactive.
func NewPromptStep(path string, reader ports.KeyReader, fs ports.FileSystem, logger ports.Logger) *KeyStep {
	return &KeyStep{
		path:        path,
		id:          step.MustNewID("authkeys:prompt"),
		source:      func() (string, error) { return reader.ReadKey("Enter SSH public key: ") },
		interactive: true,
		fs:          fs,
		logger:      logger,
	}
}

// ID returns the step identifier.
func (s *KeyStep) ID() step.ID {
	return s.id
}

// Describe returns the operator narration.
func (s *KeyStep) Describe() string {
	return "Authorizing SSH public key"
}

// loadKey resolves and caches the key line.
func (s *KeyStep) loadKey() (string, error) {
	if s.loaded {
		return s.key, nil
	}

	raw, err := s.source()
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}

	key := strings.TrimSpace(raw)
	if key == "" {
		return "", fmt.Errorf("empty SSH public key")
	}

	s.key = key
	s.loaded = true
	return key, nil
}

// Check reports whether the exact key line is already present in the file.
// A missing file simply means the key is absent. An interactive key whose
// answer has not been collected yet reports not satisfied without prompting;
// Apply re-tests membership after asking.
func (s *KeyStep) Check(_ context.Context) (bool, error) {
	if s.interactive && !s.loaded {
		return false, nil
	}

	key, err := s.loadKey()
	if err != nil {
		return false, err
	}

	path := ports.ExpandPath(s.path)
	if !s.fs.Exists(path) {
		return false, nil
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return false, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == key {
			return true, nil
		}
	}
	return false, nil
}

// Apply appends the key line, creating the parent directory and the file
// with SSH-appropriate permissions if they are absent. The append is
// guarded by a fresh membership test, so applying twice never duplicates
// the line.
func (s *KeyStep) Apply(ctx context.Context) error {
	key, err := s.loadKey()
	if err != nil {
		return err
	}

	path := ports.ExpandPath(s.path)

	dir := filepath.Dir(path)
	if !s.fs.Exists(dir) {
		if err := s.fs.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	} else if !s.fs.IsDir(dir) {
		return fmt.Errorf("%s exists and is not a directory", dir)
	}

	if s.fs.Exists(path) {
		data, err := s.fs.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) == key {
				return nil
			}
		}
	}

	if err := s.fs.AppendFile(path, []byte(key+"\n"), 0600); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}

	if s.logger != nil {
		s.logger.Info(ctx, "authorized key added",
			ports.F("path", path),
			ports.F("fingerprint", fingerprint(key)))
	}
	return nil
}

// fingerprint returns the SHA256 fingerprint of the key when it parses as
// an authorized_keys line. Parsing is best effort only; malformed input is
// still appended verbatim and reported as such here.
func fingerprint(key string) string {
	pub, _, _, _, err := ssh.ParseAuthorizedKey([]byte(key))
	if err != nil {
		return "unparsed"
	}
	return ssh.FingerprintSHA256(pub)
}
