package selector

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNameNotRecognised is returned if an image name does not follow the driver naming convention.
	ErrNameNotRecognised = errors.New("image name does not follow the driver naming convention")

	imageNameRegexp = regexp.MustCompile(`(?i)^([a-z]+)-driver-([a-z0-9]+)-64-(.+)$`)
)

// ImageName is a driver image name split into its parts.
type ImageName struct {
	Build    string
	Language Language
	Platform Platform
	raw      string
}

func (n ImageName) String() string {
	return n.raw
}

// Selection returns the Selection that FilterExpression turns into a
// pattern matching n.
func (n ImageName) Selection() Selection {
	l := n.Language
	p := n.Platform
	return Selection{Language: &l, Platform: &p}
}

type nameKey struct {
	language string
	platform string
}

var knownNames = func() map[nameKey]ImageName {
	m := map[nameKey]ImageName{}
	for _, l := range Languages {
		for _, p := range Platforms {
			m[nameKey{language: strings.ToLower(l.String()), platform: strings.ToLower(p.String())}] = ImageName{Language: l, Platform: p}
		}
	}

	return m
}()

// ParseImageName recognises names of the form <lang>-driver-<platform>-64-<build>.
func ParseImageName(name string) (ImageName, error) {
	matches := imageNameRegexp.FindStringSubmatch(name)
	if len(matches) == 0 {
		return ImageName{}, errors.Wrap(ErrNameNotRecognised, name)
	}

	n, ok := knownNames[nameKey{language: strings.ToLower(matches[1]), platform: strings.ToLower(matches[2])}]
	if !ok {
		return ImageName{}, errors.Wrapf(ErrNameNotRecognised, "%s: unknown language %q or platform %q", name, matches[1], matches[2])
	}

	n.Build = matches[3]
	n.raw = name
	return n, nil
}
