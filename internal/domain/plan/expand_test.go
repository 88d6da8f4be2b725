package plan

import (
	"errors"
	"testing"
)

func TestExpand(t *testing.T) {
	p := New("test.yaml")
	p.AddVariable("x", "bar")
	p.AddVariable("host", "db1")
	p.AddVariable("empty", "")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no placeholder is untouched", "text", "text"},
		{"empty input", "", ""},
		{"single placeholder", "${x}", "bar"},
		{"embedded placeholder", "ssh ${host} uptime", "ssh db1 uptime"},
		{"two placeholders", "${x}-${host}", "bar-db1"},
		{"undefined expands to empty", "a${nope}b", "ab"},
		{"declared but empty", "a${empty}b", "ab"},
		{"malformed leaves remainder untouched", "a${x", "a${x"},
		{"malformed after valid", "${x}${host", "bar${host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Expand(tt.in)
			if err != nil {
				t.Fatalf("Expand(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpand_NestedValue(t *testing.T) {
	p := New("test.yaml")
	p.AddVariable("inner", "world")
	p.AddVariable("outer", "hello ${inner}")

	got, err := p.Expand("${outer}")
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("Expand() = %q, want %q", got, "hello world")
	}
}

func TestExpand_SelfReferenceExceedsDepth(t *testing.T) {
	p := New("test.yaml")
	p.AddVariable("loop", "again ${loop}")

	_, err := p.Expand("${loop}")
	if !errors.Is(err, ErrExpansionDepth) {
		t.Fatalf("Expand() error = %v, want ErrExpansionDepth", err)
	}
}
