package content

import (
	"testing"

	"github.com/ucilnica/quiz-api/internal/model"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want bool
	}{
		{"legacy all blank", Option{}, false},
		{"legacy whitespace only", Option{Text: "  ", TextSL: "\t"}, false},
		{"legacy base text", Option{Text: "Motor"}, true},
		{"legacy sl only", Option{TextSL: "Motor"}, true},
		{"legacy hr only", Option{TextHR: "Motor"}, true},
		{"content text blank", Option{Content: &Content{Type: TypeText}}, false},
		{"content text sl set", Option{Content: &Content{Type: TypeText, TextSL: "Vezje"}}, true},
		{"mixed blank no image", Option{Content: &Content{Type: TypeMixed}}, false},
		{"mixed image only", Option{Content: &Content{Type: TypeMixed, ImageURL: "/img/relay.png"}}, true},
		{"mixed text only", Option{Content: &Content{Type: TypeMixed, TextHR: "Relej"}}, true},
		{"mixed blank image url", Option{Content: &Content{Type: TypeMixed, ImageURL: "  "}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValid(tc.opt); got != tc.want {
				t.Errorf("IsValid(%+v) = %v, want %v", tc.opt, got, tc.want)
			}
		})
	}
}

func TestLocalizedText(t *testing.T) {
	legacy := Option{Text: "Sensor", TextSL: "Senzor", TextHR: "Senzor (hr)"}
	contentOpt := Option{
		Text: "stale flat value",
		Content: &Content{Type: TypeText, Text: "Valve", TextSL: "Ventil"},
	}

	tests := []struct {
		name string
		opt  Option
		lang string
		want string
	}{
		{"legacy sl", legacy, "sl", "Senzor"},
		{"legacy hr", legacy, "hr", "Senzor (hr)"},
		{"legacy en", legacy, "en", "Sensor"},
		{"legacy unknown lang falls back", legacy, "de", "Sensor"},
		{"content wins over flat", contentOpt, "en", "Valve"},
		{"content sl", contentOpt, "sl", "Ventil"},
		{"content hr falls back to base", contentOpt, "hr", "Valve"},
		{"nothing set", Option{}, "sl", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LocalizedText(tc.opt, tc.lang); got != tc.want {
				t.Errorf("LocalizedText(%s) = %q, want %q", tc.lang, got, tc.want)
			}
		})
	}
}

func TestImageAccessors(t *testing.T) {
	mixed := Option{Content: &Content{Type: TypeMixed, ImageURL: "/img/plc.png"}}
	if ImageURL(mixed) != "/img/plc.png" || !HasImage(mixed) {
		t.Error("mixed option must expose its image")
	}
	textTyped := Option{Content: &Content{Type: TypeText, ImageURL: "/img/sneaky.png"}}
	if ImageURL(textTyped) != "" || HasImage(textTyped) {
		t.Error("image URL only exists on mixed content")
	}
	if ImageURL(Option{Text: "plain"}) != "" {
		t.Error("legacy options have no image")
	}
}

func TestLegacyContentRoundTrip(t *testing.T) {
	orig := Option{ID: "7", Text: "Coil", TextSL: "Tuljava", TextHR: "Zavojnica", Correct: true}

	lifted := LegacyToContent(orig)
	if lifted.Content == nil || lifted.Content.Type != TypeText {
		t.Fatalf("LegacyToContent produced %+v", lifted.Content)
	}
	if lifted.Content.ImageURL != "" {
		t.Error("legacy options must lift without an image")
	}

	back := ContentToLegacy(lifted)
	if back.Text != orig.Text || back.TextSL != orig.TextSL || back.TextHR != orig.TextHR {
		t.Errorf("round trip lost language fields: %+v", back)
	}
	if back.Content != nil {
		t.Error("round trip must return to the flat representation")
	}
}

func TestFromRecord(t *testing.T) {
	t.Run("no content type stays legacy", func(t *testing.T) {
		o := FromRecord(model.Option{Text: "Breaker", TextSL: "Odklopnik"}, "3")
		if o.Content != nil {
			t.Fatalf("expected legacy option, got content %+v", o.Content)
		}
		if o.ID != "3" || o.Text != "Breaker" || o.TextSL != "Odklopnik" {
			t.Errorf("fields not carried: %+v", o)
		}
	})

	t.Run("text row rebuilds union", func(t *testing.T) {
		o := FromRecord(model.Option{Text: "Fuse", ContentType: "text", Correct: true}, "4")
		if o.Content == nil || o.Content.Type != TypeText || o.Content.Text != "Fuse" {
			t.Fatalf("got %+v", o.Content)
		}
		if !o.Correct {
			t.Error("correct flag lost")
		}
	})

	t.Run("legacy image row upgrades to mixed", func(t *testing.T) {
		o := FromRecord(model.Option{ImageURL: "/img/fuse.png", ContentType: "image"}, "5")
		if o.Content == nil || o.Content.Type != TypeMixed {
			t.Fatalf("expected mixed upgrade, got %+v", o.Content)
		}
		if o.Content.ImageURL != "/img/fuse.png" {
			t.Errorf("image url = %q", o.Content.ImageURL)
		}
		// Language fields must be present empty strings, not dropped.
		if o.Content.Text != "" || o.Content.TextSL != "" || o.Content.TextHR != "" {
			t.Errorf("upgrade must leave language fields empty: %+v", o.Content)
		}
	})
}

func TestToRecord(t *testing.T) {
	t.Run("defaults to text type", func(t *testing.T) {
		rec := ToRecord(Option{Text: "Rotor", TextHR: "Rotor (hr)"})
		if rec.ContentType != "text" {
			t.Errorf("content type = %q, want text", rec.ContentType)
		}
		if rec.Text != "Rotor" || rec.TextHR != "Rotor (hr)" {
			t.Errorf("flat fields not carried: %+v", rec)
		}
	})

	t.Run("mixed flattens with image", func(t *testing.T) {
		rec := ToRecord(Option{
			Content: &Content{Type: TypeMixed, Text: "Stator", ImageURL: "/img/stator.png"},
			Correct: true,
		})
		if rec.ContentType != "mixed" || rec.ImageURL != "/img/stator.png" {
			t.Errorf("got %+v", rec)
		}
		if !rec.Correct {
			t.Error("correct flag lost")
		}
	})

	t.Run("record round trip preserves text content", func(t *testing.T) {
		orig := Option{Content: &Content{Type: TypeText, Text: "Anode", TextSL: "Anoda", TextHR: "Anoda (hr)"}}
		got := FromRecord(ToRecord(orig), "")
		if *got.Content != *orig.Content {
			t.Errorf("round trip changed content: %+v vs %+v", got.Content, orig.Content)
		}
	})
}
