package pipeline

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/wordcrunch/internal/model"
)

// Transform applies the selected transform to a line. Transforms operate on
// characters, not bytes, so multi-byte text stays intact.
func Transform(t model.Transform, line string) string {
	switch t {
	case model.TransformLower:
		return strings.ToLower(line)
	case model.TransformUpper:
		return strings.ToUpper(line)
	case model.TransformCapitalize:
		return capitalize(line)
	case model.TransformReverse:
		return reverse(line)
	default:
		return line
	}
}

func capitalize(line string) string {
	runes := []rune(line)
	if len(runes) == 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	b.WriteRune(unicode.ToUpper(runes[0]))
	for _, r := range runes[1:] {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func reverse(line string) string {
	runes := []rune(line)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
