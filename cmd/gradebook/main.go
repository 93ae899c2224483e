// gradebook extracts betting picks from a chat transcript, grades them
// against a game file, and reports the ledger.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phenomenon0/gradebook/pkg/chat"
	"github.com/phenomenon0/gradebook/pkg/config"
	"github.com/phenomenon0/gradebook/pkg/export"
	"github.com/phenomenon0/gradebook/pkg/games"
	"github.com/phenomenon0/gradebook/pkg/metrics"
	"github.com/phenomenon0/gradebook/pkg/picks"
	"github.com/phenomenon0/gradebook/pkg/pipeline"
	"github.com/phenomenon0/gradebook/pkg/store"
	"github.com/phenomenon0/gradebook/pkg/stream"
)

var (
	transcriptPath = flag.String("transcript", "", "Transcript JSONL file (required)")
	gamesPaths     = flag.String("games", "", "Comma-separated game record JSON files (required)")
	configPath     = flag.String("config", "", "YAML config file (optional)")
	outPath        = flag.String("out", "", "Write graded picks CSV to this path")
	pgDSN          = flag.String("pg", "", "Postgres DSN for the pick ledger (or GRADEBOOK_PG env)")
	httpAddr       = flag.String("http", "", "Serve /metrics and /ws on this address and stay up")
	verbose        = flag.Bool("verbose", false, "Verbose logging")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	if *transcriptPath == "" || *gamesPaths == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	msgs, err := chat.ReadTranscriptFile(*transcriptPath, cfg.Location())
	if err != nil {
		log.Fatalf("Failed to read transcript: %v", err)
	}
	log.Printf("Loaded %d messages from %s", len(msgs), *transcriptPath)

	index, err := games.LoadIndex(cfg.Location(), strings.Split(*gamesPaths, ",")...)
	if err != nil {
		log.Fatalf("Failed to load games: %v", err)
	}
	log.Printf("Indexed %d games", index.Len())

	pm := metrics.Default()
	pl := pipeline.New(cfg, pm)

	var hub *stream.Hub
	if *httpAddr != "" {
		hub = stream.NewHub()
		go hub.Run()
		go serveHTTP(*httpAddr, hub, pm)
		pl.OnPick = hub.BroadcastPick
		pl.OnGrade = hub.BroadcastGrade
	}
	if *verbose {
		prevOnGrade := pl.OnGrade
		pl.OnGrade = func(p *picks.Pick) {
			log.Printf("[GRADE] %s %s %s %s -> %s %s",
				p.Date.Format("2006-01-02"), p.League, p.Team, p.Type, p.Status, p.GradeReason)
			if prevOnGrade != nil {
				prevOnGrade(p)
			}
		}
	}

	result := pl.Run(msgs, index)
	log.Printf("Graded %d picks in %s", len(result.Picks), result.Duration.Round(time.Millisecond))

	if err := export.WriteSummary(os.Stdout, result.Summary, cfg.BaseUnitDecimal()); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}

	if *outPath != "" {
		if err := writeCSV(*outPath, result, cfg); err != nil {
			log.Fatalf("Failed to write CSV: %v", err)
		}
		log.Printf("Wrote %s", *outPath)
	}

	if dsn := pgDSNValue(); dsn != "" {
		if err := saveLedger(dsn, result.Picks); err != nil {
			// The run's summary and CSV already made it out; a ledger
			// failure should not throw them away.
			log.Printf("[STORE] Failed to save ledger: %v", err)
			if hub != nil {
				hub.BroadcastError(err, "ledger")
			}
		} else {
			log.Printf("Saved %d picks to postgres", len(result.Picks))
		}
	}

	if hub != nil {
		hub.BroadcastRun(result.Summary)
		log.Printf("Serving status on %s (ws://%s/ws). Press Ctrl+C to stop", *httpAddr, *httpAddr)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
	}
}

func loadConfig() (*config.Config, error) {
	if *configPath == "" {
		return config.Default(), nil
	}
	return config.Load(*configPath)
}

func pgDSNValue() string {
	if *pgDSN != "" {
		return *pgDSN
	}
	return os.Getenv("GRADEBOOK_PG")
}

func writeCSV(path string, result *pipeline.Result, cfg *config.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteCSV(f, result.Picks, cfg.BaseUnitDecimal())
}

func saveLedger(dsn string, batch []*picks.Pick) error {
	if len(batch) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := store.Open(dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := st.SavePicks(ctx, batch); err != nil {
		return err
	}

	from, to := batchDateRange(batch)
	rows, err := st.Summary(ctx, from, to)
	if err != nil {
		return err
	}
	for _, r := range rows {
		log.Printf("[STORE] Ledger %s %s: %d picks, net %s", r.League, r.Status, r.Count, r.Net)
	}
	return nil
}

// batchDateRange returns the min and max pick dates in a batch.
func batchDateRange(batch []*picks.Pick) (time.Time, time.Time) {
	from, to := batch[0].Date, batch[0].Date
	for _, p := range batch[1:] {
		if p.Date.Before(from) {
			from = p.Date
		}
		if p.Date.After(to) {
			to = p.Date
		}
	}
	return from, to
}

func serveHTTP(addr string, hub *stream.Hub, pm *metrics.PipelineMetrics) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.Handle("/metrics", promhttp.HandlerFor(pm.Registry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "ok",
			"clients": hub.ClientCount(),
		})
	})

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
