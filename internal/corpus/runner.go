package corpus

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/itbasis/go-clock"

	"github.com/myusername/leaderboard-extractor/pkg/models"
	"github.com/myusername/leaderboard-extractor/pkg/parser"
	"github.com/myusername/leaderboard-extractor/pkg/tables"
)

const (
	// Worker pool configuration
	DefaultWorkerCount = 4
	progressInterval   = 100
)

// Runner extracts one record kind from a corpus of saved pages using a
// worker pool. Rows come out in the corpus's lexicographic file order no
// matter how many workers run.
type Runner struct {
	Kind    tables.Kind
	Workers int  // worker goroutines, DefaultWorkerCount when <= 0
	Dedupe  bool // drop repeat (server, season, player) identities
	Quiet   bool // suppress progress logging
	Clock   clock.Clock
}

// Result summarizes one extraction run.
type Result struct {
	Files      int
	Succeeded  int
	Failed     int
	Duplicates int
	Rows       [][]string
	Elapsed    time.Duration
}

// outcome holds everything one page produced, kept per-index so the
// assembly pass can run in file order.
type outcome struct {
	path  string
	ident models.Identity
	rows  [][]string
	err   error
}

// Run parses every path and assembles the output rows. Per-page failures
// are counted, not returned; a bad page never stops the run.
func (r *Runner) Run(paths []string) Result {
	cl := r.Clock
	if cl == nil {
		cl = clock.New()
	}
	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkerCount
	}

	start := cl.Now()
	total := len(paths)
	byIndex := make([]outcome, total)

	// Workers write disjoint indices, so byIndex needs no lock.
	jobs := make(chan int)
	var processed int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				byIndex[i] = r.process(paths[i])
				n := atomic.AddInt64(&processed, 1)
				if !r.Quiet && n%progressInterval == 0 {
					log.Printf("Processed %d/%d pages (elapsed: %s)", n, total, formatDuration(cl.Now().Sub(start)))
				}
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Assembly runs single-threaded and in file order; this is also where
	// dedupe happens, so the surviving rows do not depend on worker timing.
	var seen *bloom.BloomFilter
	if r.Dedupe {
		seen = bloom.NewWithEstimates(1000000, 0.001)
	}

	res := Result{Files: total}
	for _, o := range byIndex {
		if o.err != nil {
			if errors.Is(o.err, parser.ErrNoDiscordID) {
				log.Printf("Warning: could not extract discord id from %s", o.path)
			} else {
				log.Printf("Error: %v", o.err)
			}
			res.Failed++
			continue
		}
		if seen != nil {
			key := o.ident.ServerName + "|" + o.ident.Season + "|" + o.ident.DiscordID
			if seen.TestString(key) {
				res.Duplicates++
				continue
			}
			seen.AddString(key)
		}
		res.Succeeded++
		res.Rows = append(res.Rows, o.rows...)
	}
	res.Elapsed = cl.Now().Sub(start)
	return res
}

// process extracts one page. The identity gate comes first: a page whose
// player id cannot be resolved contributes nothing, whichever kind runs.
func (r *Runner) process(path string) outcome {
	o := outcome{path: path}

	doc, err := parser.ParseFile(path)
	if err != nil {
		o.err = err
		return o
	}
	ident, err := doc.Identity()
	if err != nil {
		o.err = fmt.Errorf("error extracting identity from %s: %w", path, err)
		return o
	}

	o.ident = ident
	o.rows = tables.Rows(r.Kind, ident, doc)
	return o
}

// PrintSummary prints the run's outcome.
func (res Result) PrintSummary() {
	fmt.Printf("\n=== Extraction Complete ===\n")
	fmt.Printf("Total time: %s\n", formatDuration(res.Elapsed))
	fmt.Printf("Pages found: %d\n", res.Files)
	fmt.Printf("Pages extracted: %d\n", res.Succeeded)
	fmt.Printf("Pages failed: %d\n", res.Failed)
	if res.Duplicates > 0 {
		fmt.Printf("Duplicates skipped: %d\n", res.Duplicates)
	}
	fmt.Printf("Rows produced: %d\n", len(res.Rows))
	if res.Files > 0 && res.Elapsed > 0 {
		fmt.Printf("Throughput: %.1f pages/sec\n", float64(res.Files)/res.Elapsed.Seconds())
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%02ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%02dm%02ds", hours, mins, secs)
}
