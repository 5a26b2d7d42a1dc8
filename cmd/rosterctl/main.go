package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"rosterkit/pkg/parser"
	"rosterkit/pkg/refdata"
	"rosterkit/pkg/report"
	"rosterkit/pkg/roster"
	"rosterkit/pkg/schema"
)

func main() {
	var (
		rosterPath   = flag.String("roster", "", "roster spreadsheet to import (xlsx or csv)")
		refdataPath  = flag.String("refdata", "", "reference data YAML with employees and shifts")
		jsonOut      = flag.String("json", "", "write the import report as JSON to this file (default stdout)")
		pdfOut       = flag.String("pdf", "", "also write the report as PDF to this file")
		templateOut  = flag.String("template", "", "write a blank roster template workbook and exit")
		templateFrom = flag.String("from", time.Now().Format("2006-01-02"), "first date for -template")
		templateDays = flag.Int("days", 7, "number of days for -template")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *refdataPath == "" {
		log.Error("missing -refdata")
		os.Exit(2)
	}
	dir, err := refdata.Load(*refdataPath)
	if err != nil {
		log.Error("loading reference data", "err", err)
		os.Exit(1)
	}
	if len(dir.Shifts) == 0 {
		dir.Shifts = refdata.DefaultShifts()
	}

	if *templateOut != "" {
		from, err := time.Parse("2006-01-02", *templateFrom)
		if err != nil {
			log.Error("invalid -from date", "err", err)
			os.Exit(2)
		}
		if err := report.WriteTemplate(*templateOut, dir.Employees, from, *templateDays); err != nil {
			log.Error("writing template", "err", err)
			os.Exit(1)
		}
		log.Info("template written", "path", *templateOut, "employees", len(dir.Employees), "days", *templateDays)
		return
	}

	if *rosterPath == "" {
		log.Error("missing -roster")
		os.Exit(2)
	}
	data, err := os.ReadFile(*rosterPath)
	if err != nil {
		log.Error("reading roster file", "err", err)
		os.Exit(1)
	}

	parsed, err := parser.ParseRoster(data, dir.Employees, dir.Shifts)
	if err != nil {
		log.Error("unreadable roster file", "err", err)
		os.Exit(1)
	}

	var conflicts []schema.ShiftConflict
	if len(parsed.Errors) == 0 {
		store := roster.NewStore()
		accepted := importableAssignments(parsed)
		store.Merge(accepted, roster.Append)
		conflicts = store.Conflicts(dir.Shifts, dir.Employees)
		log.Info("roster parsed", "assignments", len(accepted), "warnings", len(parsed.Warnings), "conflicts", len(conflicts))
	} else {
		log.Warn("structural errors, roster not importable", "errors", len(parsed.Errors))
	}

	summary := report.Build(parsed, nil, conflicts)

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Error("encoding report", "err", err)
		os.Exit(1)
	}
	out = append(out, '\n')
	if *jsonOut != "" {
		if err := os.WriteFile(*jsonOut, out, 0o644); err != nil {
			log.Error("writing report", "err", err)
			os.Exit(1)
		}
	} else {
		os.Stdout.Write(out)
	}

	if *pdfOut != "" {
		f, err := os.Create(*pdfOut)
		if err != nil {
			log.Error("creating pdf", "err", err)
			os.Exit(1)
		}
		if err := summary.WritePDF(f); err != nil {
			f.Close()
			log.Error("writing pdf", "err", err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			log.Error("closing pdf", "err", err)
			os.Exit(1)
		}
	}

	if len(parsed.Errors) > 0 {
		os.Exit(1)
	}
}

// importableAssignments filters the parse result down to assignments whose
// employee column was matched, mirroring the confirmation step of the
// upload flow.
func importableAssignments(p *schema.ParsedRosterData) []schema.RosterAssignment {
	matched := make(map[string]bool, len(p.Employees))
	for _, pe := range p.Employees {
		if pe.MatchedID != "" {
			matched[pe.MatchedID] = true
		}
	}

	out := make([]schema.RosterAssignment, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		if matched[a.EmployeeID] {
			out = append(out, a)
		}
	}
	return out
}
