package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestApplyBuildSettings(t *testing.T) {
	stamp := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	tests := []struct {
		name               string
		commit, date       string
		wantCommit, wantAt string
	}{
		{"unset", "none", "unknown", "abc123-dirty", "2026-01-02T03:04:05Z"},
		{"ldflags win", "deadbeef", "2025-12-31", "deadbeef", "2025-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldCommit, oldDate := Commit, Date
			t.Cleanup(func() { Commit, Date = oldCommit, oldDate })

			Commit, Date = tt.commit, tt.date
			applyBuildSettings(stamp)
			if Commit != tt.wantCommit || Date != tt.wantAt {
				t.Errorf("got %s %s, want %s %s", Commit, Date, tt.wantCommit, tt.wantAt)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q", String())
	}
}
