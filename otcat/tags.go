package otcat

import "fmt"

// AAT feature types from Apple's feature registry,
// https://developer.apple.com/fonts/TrueType-Reference-Manual/RM09/AppendixF.html
const (
	TypeAllTypographicFeatures = 0
	TypeLigatures              = 1
	TypeVerticalSubstitution   = 4
	TypeNumberSpacing          = 6
	TypeVerticalPosition       = 10
	TypeFractions              = 11
	TypeTypographicExtras      = 14
	TypeCharacterAlternatives  = 17
	TypeStyleOptions           = 19
	TypeNumberCase             = 21
	TypeCaseSensitiveLayout    = 33
	TypeStylisticAlternatives  = 35
	TypeContextualAlternatives = 36
	TypeLowerCase              = 37
	TypeUpperCase              = 38
)

// mapping ties one OpenType feature tag to the AAT (type, selector) pair that
// engages it, together with the registry's canonical names. The table covers
// the registered simple substitution features; stylistic sets (ssNN) and
// character variants (cvNN) are handled arithmetically, and positioning-only
// tags (kern, mark, …) have no AAT counterpart.
type mapping struct {
	tag      string
	typ      uint16
	selector uint16
	typeName string
	selName  string
}

var registeredMappings = []mapping{
	{"rlig", TypeLigatures, 0, "Ligatures", "Required Ligatures"},
	{"liga", TypeLigatures, 2, "Ligatures", "Common Ligatures"},
	{"dlig", TypeLigatures, 4, "Ligatures", "Rare Ligatures"},
	{"vert", TypeVerticalSubstitution, 0, "Vertical Substitution", "Vertical Forms"},
	{"tnum", TypeNumberSpacing, 0, "Number Spacing", "Monospaced Numbers"},
	{"pnum", TypeNumberSpacing, 1, "Number Spacing", "Proportional Numbers"},
	{"sups", TypeVerticalPosition, 1, "Vertical Position", "Superiors"},
	{"subs", TypeVerticalPosition, 2, "Vertical Position", "Inferiors"},
	{"ordn", TypeVerticalPosition, 3, "Vertical Position", "Ordinals"},
	{"sinf", TypeVerticalPosition, 4, "Vertical Position", "Scientific Inferiors"},
	{"afrc", TypeFractions, 1, "Fractions", "Vertical Fractions"},
	{"frac", TypeFractions, 2, "Fractions", "Diagonal Fractions"},
	{"zero", TypeTypographicExtras, 4, "Typographic Extras", "Slashed Zero"},
	{"titl", TypeStyleOptions, 4, "Style Options", "Titling Caps"},
	{"onum", TypeNumberCase, 0, "Number Case", "Lowercase Numbers"},
	{"lnum", TypeNumberCase, 1, "Number Case", "Uppercase Numbers"},
	{"case", TypeCaseSensitiveLayout, 0, "Case-Sensitive Layout", "Case-Sensitive Forms"},
	{"calt", TypeContextualAlternatives, 0, "Contextual Alternatives", "Contextual Alternates"},
	{"swsh", TypeContextualAlternatives, 2, "Contextual Alternatives", "Swash Alternates"},
	{"smcp", TypeLowerCase, 1, "Lower Case", "Small Capitals"},
	{"pcap", TypeLowerCase, 2, "Lower Case", "Petite Capitals"},
	{"c2sc", TypeUpperCase, 1, "Upper Case", "Small Capitals"},
	{"c2pc", TypeUpperCase, 2, "Upper Case", "Petite Capitals"},
}

// FeatureTag translates an AAT (type, selector) pair into the OpenType
// feature tag that a shaping engine understands. Returns false for pairs
// without a registered OpenType counterpart.
func FeatureTag(typeID, selectorID uint16) (string, bool) {
	switch typeID {
	case TypeStylisticAlternatives:
		// "Stylistic Set N On" selectors are the even selectors 2..40
		if selectorID >= 2 && selectorID <= 40 && selectorID%2 == 0 {
			return fmt.Sprintf("ss%02d", selectorID/2), true
		}
		return "", false
	case TypeCharacterAlternatives:
		if selectorID >= 1 && selectorID <= 99 {
			return fmt.Sprintf("cv%02d", selectorID), true
		}
		return "", false
	}
	for _, m := range registeredMappings {
		if m.typ == typeID && m.selector == selectorID {
			return m.tag, true
		}
	}
	return "", false
}

// pairForTag is the reverse direction: which (type, selector) pair does an
// OpenType feature tag correspond to. Used when synthesizing catalogs from
// GSUB feature lists.
func pairForTag(tag string) (typeID, selectorID uint16, ok bool) {
	if n, isSet := numberedTag(tag, "ss"); isSet && n >= 1 && n <= 20 {
		return TypeStylisticAlternatives, uint16(2 * n), true
	}
	if n, isVariant := numberedTag(tag, "cv"); isVariant && n >= 1 && n <= 99 {
		return TypeCharacterAlternatives, uint16(n), true
	}
	for _, m := range registeredMappings {
		if m.tag == tag {
			return m.typ, m.selector, true
		}
	}
	return 0, 0, false
}

func numberedTag(tag, prefix string) (int, bool) {
	if len(tag) != 4 || tag[:2] != prefix {
		return 0, false
	}
	if tag[2] < '0' || tag[2] > '9' || tag[3] < '0' || tag[3] > '9' {
		return 0, false
	}
	return int(tag[2]-'0')*10 + int(tag[3]-'0'), true
}

// typeName returns the registry's canonical name for a feature type id, or ""
// if unregistered.
func typeName(typeID uint16) string {
	switch typeID {
	case TypeAllTypographicFeatures:
		return "All Typographic Features"
	case TypeStylisticAlternatives:
		return "Alternative Stylistic Sets"
	case TypeCharacterAlternatives:
		return "Character Alternatives"
	}
	for _, m := range registeredMappings {
		if m.typ == typeID {
			return m.typeName
		}
	}
	return ""
}

// selectorName returns the registry's canonical name for a selector within a
// feature type, or "" if unregistered.
func selectorName(typeID, selectorID uint16) string {
	switch typeID {
	case TypeStylisticAlternatives:
		if selectorID >= 2 && selectorID <= 40 && selectorID%2 == 0 {
			return fmt.Sprintf("Stylistic Set %d", selectorID/2)
		}
		return ""
	case TypeCharacterAlternatives:
		if selectorID >= 1 {
			return fmt.Sprintf("Character Alternative %d", selectorID)
		}
		return ""
	}
	for _, m := range registeredMappings {
		if m.typ == typeID && m.selector == selectorID {
			return m.selName
		}
	}
	return ""
}
