package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrapString(t *testing.T) {
	text := strings.Repeat("word ", 30)
	for _, line := range strings.Split(WrapString(text), "\n") {
		if len(line) > Wrap {
			t.Errorf("Line exceeds %d characters: %q", Wrap, line)
		}
	}

	if got := WrapString("  short   text "); got != "short text" {
		t.Errorf("Expected whitespace to be normalized, got %q", got)
	}
	if got := WrapString(""); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" a, b,,c ,")
	if strings.Join(got, "|") != "a|b|c" {
		t.Errorf("Expected [a b c], got %v", got)
	}
	if SplitList("") != nil {
		t.Errorf("Expected nil for an empty value")
	}
}

func TestGetValueCodec(t *testing.T) {
	for _, name := range []string{"string", "json", "gob"} {
		c, err := GetValueCodec(name)
		if err != nil {
			t.Fatalf("Unexpected error for %s: %v", name, err)
		}

		var buf bytes.Buffer
		if err := c.Encode(&buf, "hello"); err != nil {
			t.Fatalf("Failed to encode with %s: %v", name, err)
		}
		v, err := c.Decode(&buf)
		if err != nil || v != "hello" {
			t.Errorf("Expected hello from %s, got %q, %v", name, v, err)
		}
	}

	if _, err := GetValueCodec("xml"); err == nil {
		t.Errorf("Expected an error for an unknown codec")
	}
}
