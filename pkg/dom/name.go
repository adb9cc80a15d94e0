package dom

import "fmt"

// ErrInvalidTagName indicates a tag name that violates the naming rules.
var ErrInvalidTagName = fmt.Errorf("invalid tag name")

// reservedTagNames are hyphenated names claimed by SVG and MathML that can
// never be bound as custom tags.
var reservedTagNames = map[string]struct{}{
	"annotation-xml":   {},
	"color-profile":    {},
	"font-face":        {},
	"font-face-src":    {},
	"font-face-uri":    {},
	"font-face-format": {},
	"font-face-name":   {},
	"missing-glyph":    {},
}

// ValidateTagName checks that name is usable as an element tag: it must start
// with a lowercase ASCII letter and contain only lowercase ASCII letters,
// digits, '-', '_' and '.'.
func ValidateTagName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTagName)
	}
	if name[0] < 'a' || name[0] > 'z' {
		return fmt.Errorf("%w: %q must start with a lowercase ASCII letter", ErrInvalidTagName, name)
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return fmt.Errorf("%w: %q contains invalid character %q", ErrInvalidTagName, name, string(c))
		}
	}
	return nil
}

// ValidateCustomTagName checks that name is a valid custom tag: a valid tag
// name that also contains a hyphen and is not a reserved hyphenated name.
func ValidateCustomTagName(name string) error {
	if err := ValidateTagName(name); err != nil {
		return err
	}
	hyphen := false
	for i := 0; i < len(name); i++ {
		if name[i] == '-' {
			hyphen = true
			break
		}
	}
	if !hyphen {
		return fmt.Errorf("%w: %q must contain a hyphen", ErrInvalidTagName, name)
	}
	if _, reserved := reservedTagNames[name]; reserved {
		return fmt.Errorf("%w: %q is a reserved name", ErrInvalidTagName, name)
	}
	return nil
}
