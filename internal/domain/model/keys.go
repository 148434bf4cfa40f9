// Package model contains domain models passed between layers.
package model

import "strings"

// PlayerKey identifies one player's history line, serialized as "POS:Name".
// Two distinct real players sharing position and name are indistinguishable;
// the source data model offers no disambiguator and matching behavior must
// not change across uploads.
type PlayerKey string

// Position returns the position prefix of the key, e.g. "QB".
func (k PlayerKey) Position() string {
	if i := strings.Index(string(k), ":"); i >= 0 {
		return string(k)[:i]
	}
	return string(k)
}

// PlayerName returns the display-name part of the key, verbatim.
func (k PlayerKey) PlayerName() string {
	if i := strings.Index(string(k), ":"); i >= 0 {
		return string(k)[i+1:]
	}
	return ""
}

// Position codes for the eight career collections.
const (
	PosQB = "QB"
	PosRB = "RB"
	PosWR = "WR"
	PosTE = "TE"
	PosOL = "OL"
	PosLB = "LB"
	PosDB = "DB"
	PosDL = "DL"
)

// Positions lists the known position codes in display order.
var Positions = []string{PosQB, PosRB, PosWR, PosTE, PosOL, PosLB, PosDB, PosDL}

// KnownPosition reports whether p is one of the eight position codes.
func KnownPosition(p string) bool {
	for _, pos := range Positions {
		if p == pos {
			return true
		}
	}
	return false
}

// DefensivePosition reports whether p is a defensive position code.
func DefensivePosition(p string) bool {
	return p == PosLB || p == PosDB || p == PosDL
}
