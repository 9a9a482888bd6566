// Command faffcli analyzes a FIT file offline and prints the detected
// faff periods and summary on stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ridelog/faff-backend-go/internal/analysis"
	"github.com/ridelog/faff-backend-go/internal/fitfile"
	"github.com/ridelog/faff-backend-go/internal/models"
)

func main() {
	var (
		path      = flag.String("file", "", "FIT activity file to analyze")
		buckets   = flag.String("buckets", "2to5,5to10,10to30,30to60,1to2hours,over2hours", "comma-separated duration buckets")
		threshold = flag.Duration("gap-threshold", analysis.DefaultGapThreshold, "minimum recording gap")
		split     = flag.String("split", "gap-aware", "slow-run split policy: simple or gap-aware")
	)
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := analysis.Options{GapThreshold: *threshold}
	var ok bool
	if opts.Split, ok = analysis.ParseSplitPolicy(*split); !ok {
		log.Fatalf("unknown split policy %q", *split)
	}
	for _, tag := range strings.Split(*buckets, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		b, ok := models.ParseBucket(tag)
		if !ok {
			log.Fatalf("unknown bucket tag %q", tag)
		}
		opts.Buckets = append(opts.Buckets, b)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	set, err := fitfile.Decode(f)
	if err != nil {
		log.Fatalf("decode %s: %v", *path, err)
	}

	res := analysis.Analyze(set.Samples, set.Summaries, opts)
	printResult(set, res)
}

func printResult(set *fitfile.RecordSet, res analysis.Result) {
	if res.Times.StartTime != nil && res.Times.EndTime != nil {
		fmt.Printf("Activity: %s  %s -> %s (%v elapsed)\n",
			set.Sport,
			res.Times.StartTime.Format(time.RFC3339),
			res.Times.EndTime.Format(time.RFC3339),
			res.Times.EndTime.Sub(*res.Times.StartTime).Round(time.Second))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tSTART\tDURATION\tSAMPLES\tDISTANCE")
	for _, p := range res.Periods {
		kind := "slow"
		if p.IsGap {
			kind = "gap"
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%d\t%.0fm\n",
			kind,
			p.StartTime.Format("15:04:05"),
			p.Duration().Round(time.Second),
			p.SampleCount,
			p.EndDistance-p.StartDistance)
	}
	w.Flush()

	s := res.Summary
	fmt.Printf("\n%d periods (%d slow runs, %d gaps), total faff %v",
		s.PeriodCount, s.SlowRunCount, s.GapCount,
		(time.Duration(s.TotalFaffMs) * time.Millisecond).Round(time.Second))
	if s.FaffPercent != nil {
		fmt.Printf(" (%.1f%% of activity)", *s.FaffPercent)
	}
	fmt.Println()
}
