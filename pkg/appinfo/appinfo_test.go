package appinfo

import (
	"testing"

	"github.com/blang/semver"
)

func TestVersionParsesAsSemver(t *testing.T) {
	if _, err := semver.Parse(Version); err != nil {
		t.Fatalf("Version %q does not parse as semver: %v", Version, err)
	}
}

func TestBannerIncludesVersion(t *testing.T) {
	got := Banner()
	want := "pixvg v" + Version
	if got != want {
		t.Errorf("Banner() = %q, want %q", got, want)
	}
}

func TestSemverPatternExtractsFromTagName(t *testing.T) {
	cases := map[string]string{
		"v1.2.3":        "v1.2.3",
		"1.2.3":         "1.2.3",
		"release-2.0.0": "2.0.0",
		"v1.2.3-rc.1":   "v1.2.3-rc.1",
		"no-version":    "",
	}
	for tag, want := range cases {
		got := semverPattern.FindString(tag)
		if got != want {
			t.Errorf("semverPattern.FindString(%q) = %q, want %q", tag, got, want)
		}
	}
}
