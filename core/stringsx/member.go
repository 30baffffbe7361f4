package stringsx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsExported reports whether name starts with an upper-case letter.
func IsExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// TrimMemberPrefix removes the first matching prefix from name when what is
// left is itself an exported member name. "SetValue" with prefix "Set" gives
// "Value"; "Settle" and "Set" are returned unchanged with false.
func TrimMemberPrefix(name string, prefixes ...string) (string, bool) {
	for _, prefix := range prefixes {
		if prefix == "" || !strings.HasPrefix(name, prefix) {
			continue
		}
		if rest := name[len(prefix):]; IsExported(rest) {
			return rest, true
		}
	}

	return name, false
}

// StripTypeArguments cuts a generic type name at its argument list:
// "Template[T]" and "Pair[int,string]" become "Template" and "Pair".
func StripTypeArguments(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}

	return name
}

// OneOf checks if s is present within ss.
func OneOf(s string, ss ...string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}

	return false
}
