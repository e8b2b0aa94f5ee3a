package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/johnquangdev/task-assigner/internal/adapter/presenter"
	"github.com/johnquangdev/task-assigner/internal/domain/entities"
	"github.com/johnquangdev/task-assigner/internal/usecase/extraction"
)

// Runs the extraction engine over a transcript file and a roster JSON
// file without starting the API server. Useful for trying rule changes:
//
//	go run scripts/assign.go -transcript meeting.txt -roster team.json -format table
func main() {
	transcriptPath := flag.String("transcript", "", "path to a plain-text transcript file")
	rosterPath := flag.String("roster", "", "path to a JSON file with an array of team members")
	format := flag.String("format", "table", "output format: table, csv or json")
	flag.Parse()

	if *transcriptPath == "" || *rosterPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	transcript, err := os.ReadFile(*transcriptPath)
	if err != nil {
		log.Fatalf("read transcript: %v", err)
	}

	rosterRaw, err := os.ReadFile(*rosterPath)
	if err != nil {
		log.Fatalf("read roster: %v", err)
	}
	var roster []entities.TeamMember
	if err := json.Unmarshal(rosterRaw, &roster); err != nil {
		log.Fatalf("parse roster: %v", err)
	}

	engine := extraction.NewEngine(extraction.DefaultRules())
	result, err := engine.Extract(string(transcript), roster)
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}

	p := presenter.NewResultPresenter()
	switch *format {
	case "table":
		fmt.Print(p.FormatTable(result))
	case "csv":
		out, err := p.RenderCSV(result)
		if err != nil {
			log.Fatalf("render csv: %v", err)
		}
		fmt.Print(out)
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("render json: %v", err)
		}
		fmt.Println(string(out))
	default:
		log.Fatalf("unknown format %q", *format)
	}
}
