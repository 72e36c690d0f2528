// Package locale negotiates the content language for student-facing
// responses. Quiz content carries English, Slovenian and Croatian variants.
package locale

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// ContextKey is where the resolved language tag lives on the gin context.
	ContextKey = "content_language"

	Default = "en"
)

var supported = []language.Tag{
	language.English,
	language.Slovenian,
	language.Croatian,
}

var names = []string{"en", "sl", "hr"}

var matcher = language.NewMatcher(supported)

// Resolve picks the best supported language from an explicit override (the
// ?lang= query parameter) and the Accept-Language header. Unknown input
// falls back to English.
func Resolve(override, acceptLanguage string) string {
	_, idx := language.MatchStrings(matcher, override, acceptLanguage)
	if idx < 0 || idx >= len(names) {
		return Default
	}
	return names[idx]
}

// Middleware resolves the request language once and stores it on the
// context.
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		lang := Resolve(ctx.Query("lang"), ctx.GetHeader("Accept-Language"))
		ctx.Set(ContextKey, lang)
		ctx.Next()
	}
}

// FromContext returns the resolved language for the request, defaulting to
// English when the middleware did not run.
func FromContext(ctx *gin.Context) string {
	if lang, ok := ctx.Get(ContextKey); ok {
		if s, ok := lang.(string); ok && s != "" {
			return s
		}
	}
	return Default
}
