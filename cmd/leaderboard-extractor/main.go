// Package main is the entry point for the leaderboard-extractor application
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"

	"github.com/myusername/leaderboard-extractor/internal/corpus"
	"github.com/myusername/leaderboard-extractor/internal/export"
	"github.com/myusername/leaderboard-extractor/internal/utils"
	"github.com/myusername/leaderboard-extractor/pkg/tables"
)

// Version is set during build using ldflags
var (
	version = "dev"
)

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env"}
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			fmt.Printf("Loaded .env from: %s\n", path)
			break
		}
	}

	// Define command-line flags
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	kindFlag := flag.String("kind", "", "Record kind to extract: stats, matches or teammates")
	inFlag := flag.String("in", os.Getenv("LEADERBOARD_INPUT_DIR"), "Directory of saved leaderboard pages")
	outFlag := flag.String("out", "", "Output CSV file (default: the kind's table name plus .csv)")
	sqliteFlag := flag.String("sqlite", "", "Also mirror the table into this sqlite database file")
	workersFlag := flag.Int("workers", corpus.DefaultWorkerCount, "Number of parser workers")
	dedupeFlag := flag.Bool("dedupe", false, "Skip pages repeating an already-seen (server, season, player) identity")
	quietFlag := flag.Bool("quiet", false, "Suppress progress logging")
	previewFlag := flag.Int("preview", 0, "Print the first N extracted rows to the console")
	flag.Parse()

	// Print version and exit if requested
	if *versionFlag {
		fmt.Printf("leaderboard-extractor version %s\n", version)
		return
	}

	// Setup logging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *kindFlag == "" || *inFlag == "" {
		usage()
		os.Exit(1)
	}
	kind, err := tables.ParseKind(*kindFlag)
	if err != nil {
		fmt.Printf("%v\n\n", err)
		usage()
		os.Exit(1)
	}

	out := *outFlag
	if out == "" {
		out = kind.DefaultOutput()
		if dir := os.Getenv("LEADERBOARD_OUTPUT_DIR"); dir != "" {
			out = filepath.Join(dir, out)
		}
	}

	log.Println("Leaderboard extractor starting...")
	log.Printf("Version: %s", version)
	log.Printf("Extracting %s from %s into %s", kind.Name(), *inFlag, out)

	paths, err := corpus.FindDocuments(*inFlag)
	if err != nil {
		log.Fatalf("Failed to scan input directory: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("No leaderboard pages found under %s", *inFlag)
	}
	log.Printf("Found %d pages", len(paths))

	runner := &corpus.Runner{
		Kind:    kind,
		Workers: *workersFlag,
		Dedupe:  *dedupeFlag,
		Quiet:   *quietFlag,
		Clock:   clock.New(),
	}
	result := runner.Run(paths)

	sinks := []export.Sink{&export.CSVSink{Path: out}}
	if *sqliteFlag != "" {
		db, err := export.OpenSQLite(*sqliteFlag)
		if err != nil {
			log.Fatalf("Failed to open sqlite database: %v", err)
		}
		defer db.Close()
		sinks = append(sinks, db)
	}
	if err := export.WriteAll(sinks, kind.Name(), kind.Columns(), result.Rows); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Wrote %d rows to %s", len(result.Rows), out)
	if *sqliteFlag != "" {
		log.Printf("Mirrored %s into %s", kind.Name(), *sqliteFlag)
	}

	if *previewFlag > 0 {
		utils.PrintRowsPreview(kind.Name(), kind.Columns(), result.Rows, *previewFlag)
	}
	result.PrintSummary()
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  leaderboard-extractor -kind=stats -in=./pages [-out=player_main_stats.csv]")
	fmt.Println("  leaderboard-extractor -kind=matches -in=./pages [-workers=4] [-dedupe]")
	fmt.Println("  leaderboard-extractor -kind=teammates -in=./pages [-sqlite=leaderboards.db]")
	fmt.Println()
	fmt.Println("The input directory can also be set via LEADERBOARD_INPUT_DIR in .env;")
	fmt.Println("LEADERBOARD_OUTPUT_DIR prefixes default output filenames.")
	fmt.Println()
	fmt.Println("Each run extracts one record kind from every saved page:")
	fmt.Println("  stats     - one aggregate row per page (player_main_stats.csv)")
	fmt.Println("  matches   - recent results, up to ten rows per page (match_history.csv)")
	fmt.Println("  teammates - common teammates, up to ten rows per page (common_teammates.csv)")
}
