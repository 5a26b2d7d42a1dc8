//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"rosterkit/pkg/engine"
	"rosterkit/pkg/parser"
	"rosterkit/pkg/refdata"
	"rosterkit/pkg/schema"
)

// NOTE: each page worker loads its own WASM instance. Reference data arrives
// as JSON on every call rather than through shared globals, so calls are
// independent and safe to issue from any worker.

func errJSON(msg string) string {
	out, _ := json.Marshal(map[string]string{"error": msg})
	return string(out)
}

// parseRoster handles the rosterParse JS function call.
// args[0] = Uint8Array (spreadsheet bytes)
// args[1] = string (reference data JSON: {"employees":[...],"shifts":[...]})
// Returns: ParsedRosterData as a JSON string, or {"error": ...}.
func parseRoster(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errJSON("rosterParse requires 2 arguments: Uint8Array and refdata JSON")
	}

	data := make([]byte, args[0].Get("length").Int())
	js.CopyBytesToGo(data, args[0])

	var dir refdata.Directory
	if err := json.Unmarshal([]byte(args[1].String()), &dir); err != nil {
		return errJSON("invalid refdata JSON: " + err.Error())
	}

	result, err := parser.ParseRoster(data, dir.Employees, dir.Shifts)
	if err != nil {
		return errJSON(err.Error())
	}

	out, _ := json.Marshal(result)
	return string(out)
}

// detectConflicts handles the rosterDetectConflicts JS function call.
// args[0] = string (RosterAssignment array JSON, the current roster set)
// args[1] = string (reference data JSON)
// Returns: ShiftConflict array as a JSON string, or {"error": ...}.
func detectConflicts(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errJSON("rosterDetectConflicts requires 2 arguments: assignments JSON and refdata JSON")
	}

	var assignments []schema.RosterAssignment
	if err := json.Unmarshal([]byte(args[0].String()), &assignments); err != nil {
		return errJSON("invalid assignments JSON: " + err.Error())
	}

	var dir refdata.Directory
	if err := json.Unmarshal([]byte(args[1].String()), &dir); err != nil {
		return errJSON("invalid refdata JSON: " + err.Error())
	}

	conflicts := engine.DetectConflicts(assignments, dir.Shifts, dir.Employees)
	out, _ := json.Marshal(conflicts)
	return string(out)
}

func main() {
	js.Global().Set("rosterParse", js.FuncOf(parseRoster))
	js.Global().Set("rosterDetectConflicts", js.FuncOf(detectConflicts))

	// Block forever so the WASM module stays alive.
	select {}
}
