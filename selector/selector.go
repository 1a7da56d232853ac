package selector

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Language is the source language a driver image was built for.
type Language int

const (
	Java Language = iota
	Python
	Nodejs
	Cpp
	Csharp
)

// DefaultLanguage is used when a Selection does not name a language.
const DefaultLanguage = Java

// Languages lists every Language in declaration order.
var Languages = []Language{Java, Python, Nodejs, Cpp, Csharp}

func (l Language) String() string {
	switch l {
	case Java:
		return "Java"
	case Python:
		return "Python"
	case Nodejs:
		return "Nodejs"
	case Cpp:
		return "Cpp"
	case Csharp:
		return "Csharp"
	}

	return fmt.Sprintf("Language(%d)", int(l))
}

// Platform is the operating system a driver image targets.
type Platform int

const (
	Bionic Platform = iota
	Focal
	Jammy
	Rocky8
	Rocky9
	Windows
)

// Platforms lists every Platform in declaration order.
var Platforms = []Platform{Bionic, Focal, Jammy, Rocky8, Rocky9, Windows}

func (p Platform) String() string {
	switch p {
	case Bionic:
		return "Bionic"
	case Focal:
		return "Focal"
	case Jammy:
		return "Jammy"
	case Rocky8:
		return "Rocky8"
	case Rocky9:
		return "Rocky9"
	case Windows:
		return "Windows"
	}

	return fmt.Sprintf("Platform(%d)", int(p))
}

var (
	// ErrUnknownLanguage is returned by ParseLanguage for values outside of Languages.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrUnknownPlatform is returned by ParsePlatform for values outside of Platforms.
	ErrUnknownPlatform = errors.New("unknown platform")
)

// ParseLanguage matches s case-insensitively against the display names of Languages.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages {
		if strings.EqualFold(l.String(), s) {
			return l, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownLanguage, "%q (expected one of %s)", s, JoinValues(Languages))
}

// ParsePlatform matches s case-insensitively against the display names of Platforms.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms {
		if strings.EqualFold(p.String(), s) {
			return p, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownPlatform, "%q (expected one of %s)", s, JoinValues(Platforms))
}

// JoinValues renders values lowercased and comma separated.
func JoinValues[T fmt.Stringer](values []T) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, strings.ToLower(v.String()))
	}

	return strings.Join(names, ", ")
}

// Selection narrows a query to a language and a platform. A nil Language
// stands for DefaultLanguage, a nil Platform matches any platform.
type Selection struct {
	Language *Language
	Platform *Platform
}

// NewSelection parses the raw selector values given on the command line.
// Empty strings leave the corresponding field unset.
func NewSelection(lang, platform string) (Selection, error) {
	sel := Selection{}
	if lang != "" {
		l, err := ParseLanguage(lang)
		if err != nil {
			return Selection{}, err
		}

		sel.Language = &l
	}

	if platform != "" {
		p, err := ParsePlatform(platform)
		if err != nil {
			return Selection{}, err
		}

		sel.Platform = &p
	}

	return sel, nil
}

// ResolveLanguageDefault returns the language of sel, substituting
// DefaultLanguage when none was given.
func ResolveLanguageDefault(sel Selection) Language {
	if sel.Language == nil {
		return DefaultLanguage
	}

	return *sel.Language
}

// ResolvePlatformWildcard returns the platform of sel and true, or false
// when sel matches any platform.
func ResolvePlatformWildcard(sel Selection) (Platform, bool) {
	if sel.Platform == nil {
		return 0, false
	}

	return *sel.Platform, true
}

// LanguageString is the display name of the resolved language.
func (s Selection) LanguageString() string {
	return ResolveLanguageDefault(s).String()
}

// PlatformString is the display name of the platform, or "*" for any.
func (s Selection) PlatformString() string {
	p, ok := ResolvePlatformWildcard(s)
	if !ok {
		return "*"
	}

	return p.String()
}

// FilterExpression returns the image name pattern matching sel, e.g.
// "cpp-driver-rocky9-64-*" or "java-driver-*".
func FilterExpression(sel Selection) string {
	lang := ResolveLanguageDefault(sel)
	platform, ok := ResolvePlatformWildcard(sel)
	if !ok {
		return strings.ToLower(fmt.Sprintf("%s-driver-*", lang))
	}

	return strings.ToLower(fmt.Sprintf("%s-driver-%s-64-*", lang, platform))
}

// Build is FilterExpression for optional language and platform values.
func Build(lang *Language, platform *Platform) string {
	return FilterExpression(Selection{Language: lang, Platform: platform})
}
