package site

import (
	"context"
	"testing"
)

func TestCategoryPermastruct(t *testing.T) {
	cases := []struct {
		name string
		s    Settings
		want string
	}{
		{"plain", Settings{}, ""},
		{"default base", Settings{PermalinkStructure: "/%postname%/"}, "/category/%category%"},
		{"custom base", Settings{PermalinkStructure: "/%postname%/", CategoryBase: "/topics/"}, "/topics/%category%"},
	}
	for _, tc := range cases {
		if got := tc.s.CategoryPermastruct(); got != tc.want {
			t.Errorf("%s: CategoryPermastruct = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestTrailingSlash(t *testing.T) {
	slash := Settings{PermalinkStructure: "/%category%/%postname%/"}
	bare := Settings{PermalinkStructure: "/%category%/%postname%"}

	if got := slash.TrailingSlash("category/tech"); got != "category/tech/" {
		t.Errorf("slash structure: got %q", got)
	}
	if got := slash.TrailingSlash("category/tech/"); got != "category/tech/" {
		t.Errorf("slash structure doubled: got %q", got)
	}
	if got := bare.TrailingSlash("category/tech/"); got != "category/tech" {
		t.Errorf("bare structure: got %q", got)
	}
}

func TestHasCategoryTag(t *testing.T) {
	if (Settings{PermalinkStructure: "/%year%/%postname%/"}).HasCategoryTag() {
		t.Errorf("structure without %%category%% reported a tag")
	}
	if !(Settings{PermalinkStructure: "/%category%/%postname%/"}).HasCategoryTag() {
		t.Errorf("structure with %%category%% not detected")
	}
}

func TestStatic_Normalizes(t *testing.T) {
	s, err := Static{SiteURL: " https://example.com/ ", PermalinkStructure: " /%postname%/"}.
		Settings(context.Background())
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.SiteURL != "https://example.com" || s.PermalinkStructure != "/%postname%/" {
		t.Fatalf("not normalized: %#v", s)
	}
}

func TestOverlay_EmptyStructureSwitchesToPlain(t *testing.T) {
	base := Settings{PermalinkStructure: "/%postname%/", SiteURL: "https://a.example"}
	got := base.overlay(map[string]string{KeyPermalinkStructure: ""})
	if got.Pretty() {
		t.Fatalf("explicit empty structure ignored: %#v", got)
	}
	if got.SiteURL != "https://a.example" {
		t.Fatalf("missing key cleared default: %#v", got)
	}
}
