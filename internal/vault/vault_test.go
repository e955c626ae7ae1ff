package vault

import (
	"context"
	"errors"
	"testing"
)

func TestParseRef(t *testing.T) {
	path, key, err := ParseRef("vault:secret/singlecat/db#password")
	if err != nil {
		t.Fatal(err)
	}
	if path != "secret/singlecat/db" || key != "password" {
		t.Fatalf("got %q %q", path, key)
	}

	for _, bad := range []string{"vault:secret/db", "vault:secret#pw", "vault:secret/db#", "secret/db#pw"} {
		if _, _, err := ParseRef(bad); !errors.Is(err, ErrBadRef) {
			t.Errorf("%q: err = %v, want ErrBadRef", bad, err)
		}
	}
}

func TestSplitMount(t *testing.T) {
	m, rel := splitMount("secret/singlecat/db")
	if m != "secret" || rel != "singlecat/db" {
		t.Fatalf("got %q %q", m, rel)
	}
}

func TestResolve_PlainValuePassesThrough(t *testing.T) {
	var c Client // no API calls for plain values
	got, err := c.Resolve(context.Background(), "hunter2", 0)
	if err != nil || got != "hunter2" {
		t.Fatalf("got %q, %v", got, err)
	}
	if IsRef("hunter2") || !IsRef("vault:a/b#c") {
		t.Fatal("IsRef misclassified")
	}
}
