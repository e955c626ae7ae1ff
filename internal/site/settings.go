// internal/site/settings.go
//
// Host-wide permalink settings.
//
// Context
// -------
// Three values drive every link the service renders:
//
//   • PermalinkStructure – post template such as "/%category%/%postname%/".
//     Empty means plain query-string links ("?p=12").
//   • CategoryBase       – first segment of archive links; "category" when
//     empty.
//   • SiteURL            – scheme + host (+ optional sub-path), no trailing
//     slash.
//
// The category permastruct and the trailing-slash rule are derived, never
// stored, so the two can not drift apart.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package site

import (
	"context"
	"strings"
)

// Option keys as stored in `site_config`.
const (
	KeyPermalinkStructure = "permalink_structure"
	KeyCategoryBase       = "category_base"
	KeySiteURL            = "siteurl"
)

// CategoryTag is the placeholder expanded to a category path.
const CategoryTag = "%category%"

const defaultCategoryBase = "category"

// Settings is an immutable snapshot of the host options.
type Settings struct {
	PermalinkStructure string
	CategoryBase       string
	SiteURL            string
}

// Provider hands out the current Settings.  Static and *Cache satisfy it.
type Provider interface {
	Settings(ctx context.Context) (Settings, error)
}

// Static is a Provider that always returns itself.
type Static Settings

// Settings implements Provider.
func (s Static) Settings(context.Context) (Settings, error) { return Settings(s).normalized(), nil }

// Pretty reports whether rewritten (non query-string) links are enabled.
func (s Settings) Pretty() bool { return s.PermalinkStructure != "" }

// HasCategoryTag reports whether post links embed a category path.
func (s Settings) HasCategoryTag() bool {
	return strings.Contains(s.PermalinkStructure, CategoryTag)
}

// CategoryPermastruct returns the archive template, e.g.
// "/category/%category%", or "" when pretty links are off.
func (s Settings) CategoryPermastruct() string {
	if !s.Pretty() {
		return ""
	}
	base := strings.Trim(s.CategoryBase, "/")
	if base == "" {
		base = defaultCategoryBase
	}
	return "/" + base + "/" + CategoryTag
}

// TrailingSlash applies the host convention: links end in "/" exactly when
// the permalink structure does.
func (s Settings) TrailingSlash(link string) string {
	link = strings.TrimRight(link, "/")
	if strings.HasSuffix(s.PermalinkStructure, "/") {
		return link + "/"
	}
	return link
}

// Home returns SiteURL without a trailing slash.
func (s Settings) Home() string { return strings.TrimRight(s.SiteURL, "/") }

// normalized trims stray whitespace copied from admin forms.
func (s Settings) normalized() Settings {
	s.PermalinkStructure = strings.TrimSpace(s.PermalinkStructure)
	s.CategoryBase = strings.TrimSpace(s.CategoryBase)
	s.SiteURL = strings.TrimRight(strings.TrimSpace(s.SiteURL), "/")
	return s
}

// overlay returns s with any non-empty option from kv applied.  The
// permalink structure may be set to "" explicitly to switch to plain links,
// so presence of the key wins over emptiness for that one.
func (s Settings) overlay(kv map[string]string) Settings {
	if v, ok := kv[KeyPermalinkStructure]; ok {
		s.PermalinkStructure = v
	}
	if v := kv[KeyCategoryBase]; v != "" {
		s.CategoryBase = v
	}
	if v := kv[KeySiteURL]; v != "" {
		s.SiteURL = v
	}
	return s.normalized()
}
