// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides internationalization support for envalidator.
// It uses the go-i18n library to load translation files embedded into the
// binary, so log and prompt messages can be rendered in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var bundle *i18n.Bundle
var localizer *i18n.Localizer
var currentLang string

// Init loads all embedded locale files and activates the given language.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	currentLang = lang
}

// T translates a message by its ID. Extra args are applied with fmt-style
// formatting. Unknown IDs fall back to the ID itself so a missing
// translation never hides the underlying message.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang reports the active language.
func GetLang() string {
	if currentLang == "" {
		return "en"
	}
	return currentLang
}
