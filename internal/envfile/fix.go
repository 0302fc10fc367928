// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.
package envfile

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/toeirei/envalidator/internal/i18n"
	"github.com/toeirei/envalidator/internal/keyset"
)

// FixMarker is the comment line written above keys appended by FixMissing.
const FixMarker = "# Added by envalidator"

// FixMissing appends the keys declared in the env file but absent from the
// example file to the example file, each as a "key=" line below a marker
// comment. With nothing missing no write happens at all. Repeated runs
// with missing keys append a fresh marker block each time; there is no
// deduplication. Returns the set of appended keys.
func FixMissing(logger *clog.Logger, envPath, examplePath string) (keyset.Set[string], error) {
	envKeys, err := Keys(envPath)
	if err != nil {
		return nil, err
	}
	exampleKeys, err := Keys(examplePath)
	if err != nil {
		return nil, err
	}

	missing := keyset.Diff(envKeys, exampleKeys)
	if missing.Len() == 0 {
		logger.Info(i18n.T("fix.none_missing"))
		return missing, nil
	}

	f, err := os.OpenFile(examplePath, os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", examplePath, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s\n", FixMarker); err != nil {
		return nil, fmt.Errorf("append %s: %w", examplePath, err)
	}
	for _, key := range keyset.Sorted(missing) {
		if _, err := fmt.Fprintf(f, "%s=\n", key); err != nil {
			return nil, fmt.Errorf("append %s: %w", examplePath, err)
		}
		logger.Info(i18n.T("fix.added_key", key, examplePath))
	}
	logger.Info(i18n.T("fix.done", missing.Len(), examplePath))

	return missing, nil
}
