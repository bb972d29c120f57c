// Package stl writes EBU Tech 3264 (STL) subtitle files: a fixed 1024-byte
// GSI (General Subtitle Information) header followed by one 128-byte TTI
// (Text-and-Timing Information) block per subtitle.
package stl

import (
	"fmt"
	"io"

	"github.com/nathanpbutler/opx/timecode"
)

const gsiLen = 1024

// GSI byte offsets and field widths (EBU Tech 3264 section 5.1). Fields not
// named here (Programme/Episode titles, translator details, publisher,
// editor, spare, user-defined area) are left blank-padded; this package
// targets the fields a teletext-to-STL conversion actually has values for.
const (
	offCPN = 0  // Code Page Number, 3 bytes
	offDFC = 3  // Disk Format Code, 8 bytes
	offDSC = 11 // Display Standard Code, 1 byte
	offCCT = 12 // Character Code Table number, 2 bytes
	offLC  = 14 // Language Code, 2 bytes

	offTNB = 238 // Total number of TTI blocks, 5 bytes
	offTNS = 243 // Total number of subtitles, 5 bytes
	offTNG = 248 // Total number of subtitle groups, 1 byte
	offMNC = 249 // Maximum number of displayable characters in a row, 2 bytes
	offMNR = 251 // Maximum number of displayable rows, 2 bytes
	offTCS = 253 // Time code status, 1 byte

	offCO  = 272 // Country of origin, 3 bytes
	offPUB = 275 // Originator (publisher), 32 bytes
)

// HeaderFields holds the GSI fields a caller may want to override; every
// other GSI field uses its fixed default.
type HeaderFields struct {
	Country    string // ISO 3166 3-letter code, e.g. "GBR"
	Language   string // 2-digit language code, e.g. "09" (English)
	Originator string // up to 32 characters
}

func blankPad(dst []byte, s string) {
	for i := range dst {
		dst[i] = 0x20
	}
	copy(dst, s)
}

// buildGSI renders the 1024-byte GSI block. tb/df select the Disk Format
// Code (STL25.01 or STL30.01); tnb/tns are the final TTI/subtitle counts,
// known only once the subtitle stream has been fully emitted.
func buildGSI(tb timecode.Timebase, df bool, fields HeaderFields, tnb, tns int) [gsiLen]byte {
	var g [gsiLen]byte
	for i := range g {
		g[i] = 0x20
	}

	copy(g[offCPN:], "437")

	dfc := "STL25.01"
	if tb == timecode.Rate30 {
		dfc = "STL30.01"
	}
	copy(g[offDFC:], dfc)

	g[offDSC] = '0'
	copy(g[offCCT:], "00")

	lang := fields.Language
	if lang == "" {
		lang = "09"
	}
	blankPad(g[offLC:offLC+2], lang)

	copy(g[offTNB:], fmt.Sprintf("%05d", tnb))
	copy(g[offTNS:], fmt.Sprintf("%05d", tns))
	g[offTNG] = '1'
	copy(g[offMNC:], "40")
	copy(g[offMNR:], "23")
	if df {
		g[offTCS] = '1'
	} else {
		g[offTCS] = '0'
	}

	country := fields.Country
	if country == "" {
		country = "GBR"
	}
	blankPad(g[offCO:offCO+3], country)

	blankPad(g[offPUB:offPUB+32], fields.Originator)

	return g
}

func writeGSI(w io.Writer, g [gsiLen]byte) error {
	_, err := w.Write(g[:])
	return err
}
