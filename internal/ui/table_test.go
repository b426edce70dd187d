package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/brogergvhs/chanedit/internal/buffer"
)

func TestChangeTableAligns(t *testing.T) {
	changes := buffer.ChangeSet{
		{ID: "1", Old: "a", New: "longer-name"},
		{ID: "22", Old: "雑談", New: "b"},
	}

	var out bytes.Buffer
	NewChangeTable(changes, false).Render(&out, changes)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), out.String())
	}

	want := []string{
		"a    -> longer-name  (1)",
		"雑談 -> b            (22)",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestChangeTableColor(t *testing.T) {
	c := buffer.Change{ID: "1", Old: "a", New: "b"}
	row := NewChangeTable(buffer.ChangeSet{c}, true).Row(c)
	if !strings.Contains(row, "\x1b[") {
		t.Fatalf("expected ANSI styling in %q", row)
	}
}

func TestProgressCountsFailures(t *testing.T) {
	p := NewProgress(io.Discard, 3)
	p.Increment(false)
	p.Increment(true)
	p.Increment(false)
	p.Close()

	if p.stats.Renamed.Load() != 2 || p.stats.Failed.Load() != 1 {
		t.Fatalf("renamed=%d failed=%d", p.stats.Renamed.Load(), p.stats.Failed.Load())
	}
}
