package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/google/go-cmp/cmp"

	"github.com/ktsosno/graphql-code-generator/config"
)

func TestRun(t *testing.T) {
	t.Chdir("testdata/integration/basic")

	if err := os.RemoveAll("out"); err != nil {
		t.Fatalf("cleaning output dir: %v", err)
	}

	if err := run(t.Context()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, name := range []string{"Filter", "SubFilter", "Kind"} {
		compareFiles(t, filepath.Join("want", name+".java.txt"), filepath.Join("out", name+".java"))
	}
}

func TestRun_noConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	err := run(t.Context())
	if err == nil {
		t.Fatal("run() expected error without a config file")
	}
}

func TestWatch_rejectsEndpointConfig(t *testing.T) {
	t.Parallel()

	// An endpoint config has no files to watch; watch must fail up
	// front instead of blocking on an empty watch list.
	cfg := &config.Config{
		Endpoint: &config.EndpointConfig{URL: "https://api.example.com/graphql"},
	}
	err := watch(t.Context(), cfg)
	if err == nil {
		t.Fatal("watch() expected error for endpoint config")
	}
	if !strings.Contains(err.Error(), "local schema files") {
		t.Errorf("watch() error = %q, want it to name local schema files", err)
	}
}

func TestWatch_badGlob(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Schema: []string{"["}}
	err := watch(t.Context(), cfg)
	if err == nil {
		t.Fatal("watch() expected error for invalid glob")
	}
	if !strings.Contains(err.Error(), "failed to glob") {
		t.Errorf("watch() error = %q, want the glob failure preserved", err)
	}
}

func TestShouldRegenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: "schema.graphql", Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: "schema.graphql", Op: fsnotify.Create}, true},
		{"remove", fsnotify.Event{Name: "schema.graphql", Op: fsnotify.Remove}, true},
		{"rename", fsnotify.Event{Name: "schema.graphql", Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: "schema.graphql", Op: fsnotify.Chmod}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := shouldRegenerate(tt.event); got != tt.want {
				t.Errorf("shouldRegenerate(%v) = %v, want %v", tt.event.Op, got, tt.want)
			}
		})
	}
}

func compareFiles(t *testing.T, wantFile, gotFile string) {
	t.Helper()

	want, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("reading %s: %v", wantFile, err)
	}
	got, err := os.ReadFile(gotFile)
	if err != nil {
		t.Fatalf("reading %s: %v", gotFile, err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", gotFile, diff)
	}
}
