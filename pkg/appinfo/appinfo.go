// Package appinfo reports the tool's own version and, on request, checks
// GitHub releases for a newer one. It never replaces the running binary —
// see DESIGN.md for why the teacher's auto-update path was trimmed.
package appinfo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// Version is the tool's own semantic version, validated at package init by
// the semver.Parse check below.
const Version = "1.0.0"

func init() {
	// Fail fast at startup if Version is ever edited into something that
	// doesn't parse as semver (spec §8 testable property 12).
	if _, err := semver.Parse(Version); err != nil {
		panic(fmt.Sprintf("appinfo: invalid Version constant %q: %v", Version, err))
	}
}

// Banner returns the startup banner string, e.g. "pixvg v1.0.0".
func Banner() string {
	return fmt.Sprintf("pixvg v%s", Version)
}

var semverPattern = regexp.MustCompile(`v?\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?`)

// detectLatest finds the newest published release of repo ("owner/name"),
// trying the real selfupdate.DetectLatest first and falling back to a
// hand-rolled GitHub API scan for repos whose tags don't satisfy its strict
// parsing (e.g. a "release-2.0.0" style tag, or a v-prefixed tag selfupdate
// itself rejects).
//
// Grounded on pkg/cli/update.go's CheckForUpdates, which calls
// detectLatestFallback directly; this package additionally tries the
// library's own detector first, falling back to the same tolerant scan when
// it returns an error or comes up empty.
func detectLatest(repo string) (*selfupdate.Release, bool, error) {
	if rel, found, err := selfupdate.DetectLatest(repo); err == nil && found {
		return rel, true, nil
	}
	return detectLatestFallback(repo)
}

// detectLatestFallback queries the GitHub Releases API directly and returns
// a *selfupdate.Release built from the highest-semver, non-prerelease,
// non-draft release it can find, tolerant of tag naming the way selfupdate
// itself isn't. Grounded on pkg/cli/update.go's detectLatestFallback,
// trimmed of the asset-URL bookkeeping this package doesn't need since it
// never downloads or installs an update.
func detectLatestFallback(repo string) (*selfupdate.Release, bool, error) {
	apiURL := fmt.Sprintf("https://api.github.com/repos/%s/releases", repo)
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(apiURL)
	if err != nil {
		return nil, false, fmt.Errorf("github API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, false, fmt.Errorf("github API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed reading github response: %w", err)
	}

	var releases []struct {
		TagName    string `json:"tag_name"`
		Name       string `json:"name"`
		Draft      bool   `json:"draft"`
		Prerelease bool   `json:"prerelease"`
	}
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, false, fmt.Errorf("failed to decode github releases: %w", err)
	}

	type candidate struct {
		ver semver.Version
		tag string
	}
	var candidates []candidate

	for _, r := range releases {
		if r.Draft || r.Prerelease {
			continue
		}
		match := semverPattern.FindString(r.TagName)
		if match == "" {
			match = semverPattern.FindString(r.Name)
			if match == "" {
				continue
			}
		}
		v, perr := semver.Parse(match)
		if perr != nil {
			v, perr = semver.Parse(strings.TrimPrefix(match, "v"))
			if perr != nil {
				continue
			}
		}
		candidates = append(candidates, candidate{ver: v, tag: r.TagName})
	}

	if len(candidates) == 0 {
		return nil, false, nil
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ver.GT(candidates[j].ver) })
	best := candidates[0]
	return &selfupdate.Release{Version: best.ver}, true, nil
}

// CheckForUpdate reports (to the returned string) whether repo has a
// published release newer than Version. It performs network I/O but never
// downloads or replaces the running binary — spec §4.11/DESIGN.md.
func CheckForUpdate(repo string) (string, error) {
	current, err := semver.Parse(Version)
	if err != nil {
		return "", fmt.Errorf("current version %q does not parse as semver: %w", Version, err)
	}

	latest, found, err := detectLatest(repo)
	if err != nil {
		return "", fmt.Errorf("update check failed: %w", err)
	}
	if !found || latest == nil {
		return fmt.Sprintf("no releases found for %s", repo), nil
	}
	if latest.Version.Equals(current) || current.GT(latest.Version) {
		return fmt.Sprintf("running the latest version (%s)", current), nil
	}
	return fmt.Sprintf("a newer version is available: %s (current: %s)", latest.Version, current), nil
}
