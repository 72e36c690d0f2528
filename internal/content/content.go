package content

import (
	"strings"

	"github.com/ucilnica/quiz-api/internal/model"
)

// Type tags the content union of an Option.
type Type string

const (
	TypeText  Type = "text"
	TypeMixed Type = "mixed"

	// typeImage only ever appears in legacy stored rows; it is upgraded to
	// mixed on read and never written back.
	typeImage = "image"
)

// Content is the tagged union form of an option's displayable content.
// TypeText carries the three language fields; TypeMixed additionally carries
// an image URL.
type Content struct {
	Type     Type   `json:"type"`
	Text     string `json:"text"`
	TextSL   string `json:"text_sl"`
	TextHR   string `json:"text_hr"`
	ImageURL string `json:"image_url,omitempty"`
}

// Option is the in-memory answer option. Content is set for content-typed
// options; the flat fields remain populated for call sites still on the
// legacy representation. All read access should go through LocalizedText and
// ImageURL so the two representations stay interchangeable.
type Option struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	TextSL  string   `json:"text_sl,omitempty"`
	TextHR  string   `json:"text_hr,omitempty"`
	Content *Content `json:"content,omitempty"`
	Correct bool     `json:"correct"`
}

// LocalizedText resolves the option text for lang ("en", "sl" or "hr").
// The content union wins over the flat fields; within either representation
// a missing language falls back to the base text. Returns "" when nothing is
// set.
func LocalizedText(o Option, lang string) string {
	if o.Content != nil {
		if t := pickLang(o.Content.Text, o.Content.TextSL, o.Content.TextHR, lang); t != "" {
			return t
		}
		return o.Content.Text
	}
	if t := pickLang(o.Text, o.TextSL, o.TextHR, lang); t != "" {
		return t
	}
	return o.Text
}

func pickLang(base, sl, hr, lang string) string {
	switch lang {
	case "sl":
		if sl != "" {
			return sl
		}
	case "hr":
		if hr != "" {
			return hr
		}
	}
	return base
}

// ImageURL returns the option's image URL, which exists only on mixed
// content. Empty string otherwise.
func ImageURL(o Option) string {
	if o.Content != nil && o.Content.Type == TypeMixed {
		return o.Content.ImageURL
	}
	return ""
}

// HasImage reports whether the option displays an image.
func HasImage(o Option) bool {
	return ImageURL(o) != ""
}

// IsValid is the authoring-time completeness check: an option must show
// something. Text-typed (and legacy) options need at least one non-blank
// language field; mixed options may instead rely on their image.
func IsValid(o Option) bool {
	if o.Content != nil {
		hasText := anyNonBlank(o.Content.Text, o.Content.TextSL, o.Content.TextHR)
		if o.Content.Type == TypeMixed {
			return hasText || strings.TrimSpace(o.Content.ImageURL) != ""
		}
		return hasText
	}
	return anyNonBlank(o.Text, o.TextSL, o.TextHR)
}

func anyNonBlank(ss ...string) bool {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// LegacyToContent lifts a legacy flat option into the content union. The
// result is always text-typed; legacy options cannot carry images.
func LegacyToContent(o Option) Option {
	if o.Content != nil {
		return o
	}
	o.Content = &Content{
		Type:   TypeText,
		Text:   o.Text,
		TextSL: o.TextSL,
		TextHR: o.TextHR,
	}
	return o
}

// ContentToLegacy flattens a text-typed content union back onto the legacy
// fields. Round-tripping a legacy option through LegacyToContent and back
// reproduces the original language fields exactly. Mixed options are
// returned unchanged since the flat representation cannot hold an image.
func ContentToLegacy(o Option) Option {
	if o.Content == nil || o.Content.Type != TypeText {
		return o
	}
	o.Text = o.Content.Text
	o.TextSL = o.Content.TextSL
	o.TextHR = o.Content.TextHR
	o.Content = nil
	return o
}

// FromRecord rebuilds the in-memory option from a stored row. Rows written
// before the content migration have no ContentType and stay legacy. A stored
// "image" type predates mixed content and is upgraded to mixed with
// empty-string language fields so old rows render under the current union.
func FromRecord(rec model.Option, id string) Option {
	o := Option{
		ID:      id,
		Text:    rec.Text,
		TextSL:  rec.TextSL,
		TextHR:  rec.TextHR,
		Correct: rec.Correct,
	}
	switch rec.ContentType {
	case string(TypeText):
		o.Content = &Content{
			Type:   TypeText,
			Text:   rec.Text,
			TextSL: rec.TextSL,
			TextHR: rec.TextHR,
		}
	case string(TypeMixed):
		o.Content = &Content{
			Type:     TypeMixed,
			Text:     rec.Text,
			TextSL:   rec.TextSL,
			TextHR:   rec.TextHR,
			ImageURL: rec.ImageURL,
		}
	case typeImage:
		o.Content = &Content{
			Type:     TypeMixed,
			Text:     "",
			TextSL:   "",
			TextHR:   "",
			ImageURL: rec.ImageURL,
		}
	}
	return o
}

// ToRecord flattens an option into its stored row shape. ContentType
// defaults to "text" when the option has no content union.
func ToRecord(o Option) model.Option {
	rec := model.Option{
		Text:        o.Text,
		TextSL:      o.TextSL,
		TextHR:      o.TextHR,
		ContentType: string(TypeText),
		Correct:     o.Correct,
	}
	if o.Content != nil {
		rec.Text = o.Content.Text
		rec.TextSL = o.Content.TextSL
		rec.TextHR = o.Content.TextHR
		rec.ContentType = string(o.Content.Type)
		if o.Content.Type == TypeMixed {
			rec.ImageURL = o.Content.ImageURL
		}
	}
	return rec
}
