// fetchgames pulls final scores from the ESPN scoreboard API and writes a
// game record file the grader can consume.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/phenomenon0/gradebook/pkg/feeds/espn"
	"github.com/phenomenon0/gradebook/pkg/picks"
)

var (
	league = flag.String("league", "", "League to fetch: nfl, ncaaf, nba, ncaab (required)")
	from   = flag.String("from", "", "Start date YYYY-MM-DD (required)")
	to     = flag.String("to", "", "End date YYYY-MM-DD (defaults to -from)")
	out    = flag.String("out", "", "Output path (defaults to stdout)")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	if *league == "" || *from == "" {
		flag.Usage()
		os.Exit(2)
	}

	fromDay, err := time.Parse("2006-01-02", *from)
	if err != nil {
		log.Fatalf("Invalid -from date: %v", err)
	}
	toDay := fromDay
	if *to != "" {
		if toDay, err = time.Parse("2006-01-02", *to); err != nil {
			log.Fatalf("Invalid -to date: %v", err)
		}
	}
	if toDay.Before(fromDay) {
		log.Fatalf("-to is before -from")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client := espn.New()
	records, err := client.FetchRange(ctx, picks.League(*league), fromDay, toDay)
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}
	log.Printf("Fetched %d games", len(records))

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		log.Fatalf("Failed to encode games: %v", err)
	}
	if *out != "" {
		log.Printf("Wrote %s", *out)
	}
}
