package bundle

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/HarshitR2004/GenCoder/internal/types"
)

// aliases the linguist data does not resolve to our ids.
var aliases = map[string]string{
	"py":      types.LangPython,
	"python3": types.LangPython,
	"c++":     types.LangCpp,
	"cxx":     types.LangCpp,
	"cc":      types.LangCpp,
}

// Normalize maps a user-supplied language key to its canonical id.
// Unknown keys are lowercased and returned as-is.
func Normalize(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if id, ok := aliases[key]; ok {
		return id
	}
	if lang, ok := enry.GetLanguageByAlias(key); ok {
		return languageID(lang)
	}
	return key
}

// DetectLanguage returns the canonical id for a starter file name. Only
// unambiguous extensions are accepted.
func DetectLanguage(filename string) (string, bool) {
	lang, safe := enry.GetLanguageByExtension(filepath.Base(filename))
	if lang == "" || !safe {
		return "", false
	}
	return languageID(lang), true
}

// languageID converts a linguist language name ("C++", "Python") to an id.
func languageID(name string) string {
	switch name {
	case "Python":
		return types.LangPython
	case "Java":
		return types.LangJava
	case "C++":
		return types.LangCpp
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
