package stl

import (
	"bytes"
	"testing"

	"github.com/nathanpbutler/opx/timecode"
)

func TestBuildGSI_DiskFormatCodeByTimebase(t *testing.T) {
	t.Parallel()
	tests := []struct {
		tb   timecode.Timebase
		want string
	}{
		{timecode.Rate25, "STL25.01"},
		{timecode.Rate30, "STL30.01"},
		{timecode.Rate24, "STL25.01"},
	}
	for _, tt := range tests {
		g := buildGSI(tt.tb, false, HeaderFields{}, 0, 0)
		got := string(g[offDFC : offDFC+8])
		if got != tt.want {
			t.Errorf("tb=%d: DFC = %q, want %q", tt.tb, got, tt.want)
		}
	}
}

func TestBuildGSI_FixedFields(t *testing.T) {
	t.Parallel()
	g := buildGSI(timecode.Rate25, false, HeaderFields{}, 3, 3)

	if got := string(g[offCPN : offCPN+3]); got != "437" {
		t.Errorf("CPN = %q, want 437", got)
	}
	if g[offDSC] != '0' {
		t.Errorf("DSC = %q, want '0'", g[offDSC])
	}
	if got := string(g[offCCT : offCCT+2]); got != "00" {
		t.Errorf("CCT = %q, want 00", got)
	}
	if got := string(g[offMNC : offMNC+2]); got != "40" {
		t.Errorf("MNC = %q, want 40", got)
	}
	if got := string(g[offMNR : offMNR+2]); got != "23" {
		t.Errorf("MNR = %q, want 23", got)
	}
	if got := string(g[offTNB : offTNB+5]); got != "00003" {
		t.Errorf("TNB = %q, want 00003", got)
	}
	if got := string(g[offTNS : offTNS+5]); got != "00003" {
		t.Errorf("TNS = %q, want 00003", got)
	}
}

func TestBuildGSI_TimeCodeStatusByDropFrame(t *testing.T) {
	t.Parallel()
	g := buildGSI(timecode.Rate30, true, HeaderFields{}, 0, 0)
	if g[offTCS] != '1' {
		t.Errorf("TCS = %q, want '1' for drop-frame", g[offTCS])
	}
	g2 := buildGSI(timecode.Rate25, false, HeaderFields{}, 0, 0)
	if g2[offTCS] != '0' {
		t.Errorf("TCS = %q, want '0' for non-drop-frame", g2[offTCS])
	}
}

func TestBuildGSI_OverridableFields(t *testing.T) {
	t.Parallel()
	g := buildGSI(timecode.Rate25, false, HeaderFields{
		Country:    "USA",
		Language:   "01",
		Originator: "acme",
	}, 0, 0)

	if got := string(g[offCO : offCO+3]); got != "USA" {
		t.Errorf("CO = %q, want USA", got)
	}
	if got := string(g[offLC : offLC+2]); got != "01" {
		t.Errorf("LC = %q, want 01", got)
	}
	if got := bytes.TrimRight(g[offPUB:offPUB+32], " "); string(got) != "acme" {
		t.Errorf("PUB = %q, want acme", got)
	}
}

func TestBuildGSI_DefaultFields(t *testing.T) {
	t.Parallel()
	g := buildGSI(timecode.Rate25, false, HeaderFields{}, 0, 0)
	if got := string(g[offCO : offCO+3]); got != "GBR" {
		t.Errorf("default CO = %q, want GBR", got)
	}
	if got := string(g[offLC : offLC+2]); got != "09" {
		t.Errorf("default LC = %q, want 09", got)
	}
}

func TestBuildGSI_Length(t *testing.T) {
	t.Parallel()
	g := buildGSI(timecode.Rate25, false, HeaderFields{}, 0, 0)
	if len(g) != gsiLen {
		t.Errorf("len = %d, want %d", len(g), gsiLen)
	}
}
