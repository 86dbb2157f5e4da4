package utility

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces       = regexp.MustCompile(`\s+`)
)

// Slugify chuyển một nhãn tự do thành slug dùng trong URL:
// chữ thường, bỏ dấu, bỏ ký tự đặc biệt, khoảng trắng thành gạch ngang.
// Ví dụ: "Lencería Fina" -> "lenceria-fina"
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))

	// Tách dấu (NFD) rồi loại bỏ các ký tự dấu
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, lower)
	if err != nil {
		stripped = lower
	}

	stripped = slugInvalidChars.ReplaceAllString(stripped, "")
	stripped = slugSpaces.ReplaceAllString(stripped, "-")
	return strings.Trim(stripped, "-")
}
