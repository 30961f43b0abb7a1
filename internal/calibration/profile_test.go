package calibration

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	want := Profile{CPUCount: 8, Threshold: 64, At: time.Now().Truncate(time.Second)}

	if err := SaveProfile(path, want); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	got, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if got == nil || got.Threshold != want.Threshold || got.CPUCount != want.CPUCount {
		t.Fatalf("LoadProfile = %+v, want %+v", got, want)
	}
}

func TestLoadProfileMissingFileIsNotError(t *testing.T) {
	p, err := LoadProfile(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p != nil {
		t.Fatalf("LoadProfile = %+v, want nil", p)
	}
}
