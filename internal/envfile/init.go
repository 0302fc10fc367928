// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.
package envfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/toeirei/envalidator/internal/keyset"
)

// Init creates or truncates the file at path and writes one "key=" line
// per reference key, in lexicographic order, with a trailing newline after
// the last key. Confirmation for overwriting an existing file is the
// caller's responsibility. Mode 0600 because env files tend to hold
// secrets.
func Init(path string, keys keyset.Set[string]) error {
	var b strings.Builder
	for _, key := range keyset.Sorted(keys) {
		b.WriteString(key)
		b.WriteString("=\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
