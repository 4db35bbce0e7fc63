package lpfile

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures parses every .lp file under testdata/fixtures and snapshots
// its JSON projection with go-snaps, giving broad regression coverage
// without hand-maintaining an expected value per file.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/fixtures/*.lp")
	if err != nil {
		t.Fatalf("glob testdata/fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".lp")
		t.Run(name, func(t *testing.T) {
			model, err := ReadFile(path)
			if err != nil {
				t.Fatalf("unexpected parse error for %s: %v", path, err)
			}

			data, err := model.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON error for %s: %v", path, err)
			}

			snaps.MatchSnapshot(t, string(data))
		})
	}
}
