package cookielog

import (
	"testing"
)

func TestGet_RegisteredFormats(t *testing.T) {
	for _, name := range []string{"csv", "ndjson"} {
		ctor, err := Get(name)
		if err != nil {
			t.Fatalf("expected %q to be registered, got: %v", name, err)
		}
		f := ctor()
		if f.Name() != name {
			t.Fatalf("expected format name %q, got %q", name, f.Name())
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("xml"); err == nil {
		t.Fatal("expected error for unregistered format")
	}
}

func TestFormats_ListsRegistered(t *testing.T) {
	names := Formats()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	if !seen["csv"] || !seen["ndjson"] {
		t.Fatalf("expected csv and ndjson in %v", names)
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"cookie_log.csv", "csv"},
		{"cookie_log.CSV", "csv"},
		{"cookie_log", "csv"},
		{"cookie_log.txt", "csv"},
		{"cookie_log.csv.gz", "csv"},
		{"cookie_log.csv.zst", "csv"},
		{"events.ndjson", "ndjson"},
		{"events.jsonl", "ndjson"},
		{"events.json", "ndjson"},
		{"events.ndjson.gz", "ndjson"},
		{"events.json.zstd", "ndjson"},
		{"/var/log/2018-12-09/cookie_log.csv.gz", "csv"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			if got := Detect(tc.path); got != tc.want {
				t.Fatalf("Detect(%q): expected %q, got %q", tc.path, tc.want, got)
			}
		})
	}
}
