package pkgs

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		raw        string
		version    string
		patchlevel int
	}{
		{"3.11.2", "3.11.2", NoPatchlevel},
		{"3.11.2.p0", "3.11.2", 0},
		{"3.11.2.p14", "3.11.2", 14},
		{"1.p1.p2", "1.p1", 2}, // greedy: only the trailing suffix splits off
		{"7.0", "7.0", NoPatchlevel},
		{"2024-01-15", "2024-01-15", NoPatchlevel},
		{"1.2.3.p1extra", "1.2.3.p1extra", NoPatchlevel}, // suffix must be trailing
		{"", "", NoPatchlevel},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			version, patchlevel := ParseVersion(tt.raw)
			if version != tt.version || patchlevel != tt.patchlevel {
				t.Errorf("ParseVersion(%q) = (%q, %d), want (%q, %d)",
					tt.raw, version, patchlevel, tt.version, tt.patchlevel)
			}
		})
	}
}

func TestParseVersion_RoundTrip(t *testing.T) {
	for _, raw := range []string{"3.11.2.p4", "1.0.p0", "9.p123", "5.4", "banana"} {
		version, patchlevel := ParseVersion(raw)
		if got := FormatVersion(version, patchlevel); got != raw {
			t.Errorf("round trip of %q = %q", raw, got)
		}
	}
}
