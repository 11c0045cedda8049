package model

import (
	"encoding/json"
	"testing"
)

func TestStatusSnapshot_Decode(t *testing.T) {
	raw := `{"status":"downloading","progress":42.5,"files":[],"is_playlist":true,"total_videos":7}`

	var snap StatusSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if snap.Status != JobStatusDownloading {
		t.Errorf("Expected status downloading, got %s", snap.Status)
	}
	if snap.ProgressPercent() != 42.5 {
		t.Errorf("Expected progress 42.5, got %v", snap.ProgressPercent())
	}
	if snap.IsPlaylist == nil || !*snap.IsPlaylist {
		t.Error("Expected is_playlist to be decoded as true")
	}
	if snap.TotalVideos == nil || *snap.TotalVideos != 7 {
		t.Errorf("Expected total_videos 7, got %v", snap.TotalVideos)
	}
}

func TestStatusSnapshot_AbsentFields(t *testing.T) {
	var snap StatusSnapshot
	if err := json.Unmarshal([]byte(`{"status":"started"}`), &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if snap.Progress != nil {
		t.Error("Expected absent progress to stay nil")
	}
	if snap.IsPlaylist != nil || snap.TotalVideos != nil {
		t.Error("Expected absent playlist fields to stay nil")
	}
	if snap.ProgressPercent() != 0 {
		t.Errorf("Expected 0 progress, got %v", snap.ProgressPercent())
	}
	if snap.ReadyFiles() != 0 {
		t.Errorf("Expected 0 ready files, got %d", snap.ReadyFiles())
	}
}

func TestStatusSnapshot_ProgressClamp(t *testing.T) {
	tests := []struct {
		progress float64
		expected float64
	}{
		{-5, 0},
		{0, 0},
		{55.5, 55.5},
		{100, 100},
		{140, 100},
	}

	for _, test := range tests {
		p := test.progress
		snap := &StatusSnapshot{Progress: &p}
		if got := snap.ProgressPercent(); got != test.expected {
			t.Errorf("ProgressPercent() with %v = %v, expected %v", test.progress, got, test.expected)
		}
	}

	var nilSnap *StatusSnapshot
	if nilSnap.ProgressPercent() != 0 || nilSnap.ReadyFiles() != 0 {
		t.Error("Expected nil snapshot to report zero values")
	}
}
