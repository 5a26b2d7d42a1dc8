package schema

import "strings"

// shiftCodeSynonyms maps common spreadsheet spellings to canonical codes.
// Cells are uppercased and trimmed before lookup.
var shiftCodeSynonyms = map[string]ShiftCode{
	"MORNING":  ShiftAM,
	"EVENING":  ShiftPM,
	"NIGHT":    ShiftMID,
	"MIDNIGHT": ShiftMID,
	"FULL":     ShiftSTRAIGHT,
	"FULLDAY":  ShiftSTRAIGHT,
	"REST":     ShiftOff,
	"LEAVE":    ShiftOff,
	"-":        ShiftOff,
}

// NormalizeShiftCode resolves a raw cell value to a canonical shift code.
// Empty cells mean a day off. Values that match neither a canonical code nor
// a known synonym are unrecognized (ok=false), a signal distinct from OFF.
func NormalizeShiftCode(value string) (ShiftCode, bool) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return ShiftOff, true
	}

	switch ShiftCode(s) {
	case ShiftAM, ShiftPM, ShiftMID, ShiftSTRAIGHT, ShiftOff:
		return ShiftCode(s), true
	}

	if code, ok := shiftCodeSynonyms[s]; ok {
		return code, true
	}

	return "", false
}
