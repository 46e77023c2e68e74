// Package validation provides input validation utilities.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors.
var (
	ErrEmptyInput           = errors.New("input cannot be empty")
	ErrInvalidPackageName   = errors.New("invalid package name")
	ErrInvalidDirectiveName = errors.New("invalid sshd directive name")
	ErrCommandInjection     = errors.New("input contains shell metacharacters")
)

var (
	// packageNameRegex matches valid apt package names with an optional
	// version pin. Examples: "git", "build-essential", "gh=2.40.0-1".
	packageNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9+._-]*(=[a-zA-Z0-9+:~._-]+)?$`)

	// directiveNameRegex matches sshd_config directive keywords.
	// Examples: "PasswordAuthentication", "PubkeyAuthentication".
	directiveNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

	// shellMetaChars contains shell metacharacters that could enable injection.
	shellMetaChars = []string{";", "|", "&", "$", "`", "(", ")", "{", "}", "<", ">", "\n", "\r", "\\"}
)

// ValidatePackageName validates an apt package name.
// Returns an error if the name is empty or contains invalid characters.
func ValidatePackageName(name string) error {
	if name == "" {
		return ErrEmptyInput
	}

	if len(name) > 256 {
		return fmt.Errorf("%w: name too long (max 256 characters)", ErrInvalidPackageName)
	}

	if !packageNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q contains invalid characters", ErrInvalidPackageName, name)
	}

	// Defense in depth against injection through manifest values.
	if containsShellMeta(name) {
		return fmt.Errorf("%w: %q", ErrCommandInjection, name)
	}

	return nil
}

// ValidateDirectiveName validates an sshd_config directive keyword.
func ValidateDirectiveName(name string) error {
	if name == "" {
		return ErrEmptyInput
	}

	if len(name) > 64 {
		return fmt.Errorf("%w: name too long (max 64 characters)", ErrInvalidDirectiveName)
	}

	if !directiveNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidDirectiveName, name)
	}

	return nil
}

// containsShellMeta reports whether s contains any shell metacharacter.
func containsShellMeta(s string) bool {
	for _, meta := range shellMetaChars {
		if strings.Contains(s, meta) {
			return true
		}
	}
	return false
}
