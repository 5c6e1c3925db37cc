package assistant

import (
	"strings"
	"unicode"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/pkg/constvars"
)

// malayMarkers are high-frequency Malay words unlikely to appear in English
// symptom descriptions.
var malayMarkers = []string{"saya", "sakit", "demam", "tidak", "sudah", "badan", "kepala", "perut"}

type heuristicLanguageDetector struct{}

// NewHeuristicLanguageDetector detects by script first (Chinese, Tamil), then
// by Malay marker words. Returns "" when nothing matches; callers fall back
// to the request language, then "en".
func NewHeuristicLanguageDetector() contracts.LanguageDetector {
	return &heuristicLanguageDetector{}
}

func (d *heuristicLanguageDetector) DetectLanguage(text string) string {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return constvars.LanguageChinese
		}
		if unicode.Is(unicode.Tamil, r) {
			return constvars.LanguageTamil
		}
	}

	lowered := strings.ToLower(text)
	for _, marker := range malayMarkers {
		for _, word := range strings.Fields(lowered) {
			if word == marker {
				return constvars.LanguageMalay
			}
		}
	}

	return ""
}
