package render

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/tasklist/internal/task"
)

// Locale selects how due dates are written.
type Locale string

const (
	LocaleEnglish    Locale = "en"
	LocaleIndonesian Locale = "id"
)

// Locales returns the supported locales.
func Locales() []Locale {
	return []Locale{LocaleEnglish, LocaleIndonesian}
}

// ParseLocale accepts "en", "id" and region-qualified forms such as "id-ID".
func ParseLocale(s string) (Locale, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch Locale(s) {
	case "", LocaleEnglish:
		return LocaleEnglish, nil
	case LocaleIndonesian:
		return LocaleIndonesian, nil
	}
	return "", fmt.Errorf("unsupported locale %q (want en or id)", s)
}

var indonesianMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// FormatDate writes d as day, abbreviated month and year ("20 Oct 2026",
// or "20 Okt 2026" for Indonesian). The zero Date is NoDate.
func FormatDate(d task.Date, locale Locale) string {
	if d.IsZero() {
		return NoDate
	}
	if locale == LocaleIndonesian {
		return fmt.Sprintf("%02d %s %04d", d.Day(), indonesianMonths[d.Month()-1], d.Year())
	}
	return d.Time().Format("02 Jan 2006")
}

// ClearPrompt is the delete-all confirmation question.
func ClearPrompt(locale Locale) string {
	if locale == LocaleIndonesian {
		return "Hapus semua task? Aksi ini tidak bisa dibatalkan."
	}
	return "Delete all tasks? This cannot be undone."
}
