// Command replay runs a recorded navigation and wind log through the
// derivation engine and writes one JSON delta per wind sample. It uses the
// same domain package as the service, so its output matches what the
// pipeline would publish for the same input order.
//
// Usage:
//
//	go run ./cmd/replay -in data/passage.csv -out data/passage_deltas.jsonl
//
// Input rows (no header):
//
//	nav,<field>,<value>          e.g. nav,headingTrue,1.57
//	anchor,<true|false>,<bearing> bearing in radians
//	wind,<speed m/s>,<angle deg>
package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/wind-etl/internal/domain"
	"github.com/jonboulle/clockwork"
)

func main() {
	in := flag.String("in", "", "path to the CSV log (default stdin)")
	out := flag.String("out", "", "path for JSON lines output (default stdout)")
	at := flag.String("at", "2025-01-01T00:00:00Z", "fixed RFC3339 timestamp stamped on every delta")
	source := flag.String("source", domain.DefaultSourceTag, "source tag for published deltas")
	flag.Parse()

	stamp, err := time.Parse(time.RFC3339, *at)
	if err != nil {
		log.Fatalf("invalid -at: %v", err)
	}

	r := io.Reader(os.Stdin)
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	n, err := run(r, w, stamp, *source)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "replayed %d wind samples\n", n)
}

// run replays every row in order and returns the number of deltas written.
func run(r io.Reader, w io.Writer, stamp time.Time, source string) (int, error) {
	domain.SetClock(clockwork.NewFakeClockAt(stamp))
	defer domain.SetClock(nil)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	tracker := domain.NewTracker()
	engine := domain.NewEngine(tracker, source)
	enc := json.NewEncoder(w)

	written := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return written, nil
		}
		if err != nil {
			return written, fmt.Errorf("read log: %w", err)
		}
		line, _ := cr.FieldPos(0)

		switch strings.ToLower(rec[0]) {
		case "nav":
			v, err := parseFloat(rec[2])
			if err != nil {
				return written, fmt.Errorf("line %d: %w", line, err)
			}
			if u, ok := domain.ParseUpdate(rec[1], v); ok {
				tracker.Apply(u)
			}
		case "anchor":
			anchored, err := strconv.ParseBool(rec[1])
			if err != nil {
				return written, fmt.Errorf("line %d: anchored flag: %w", line, err)
			}
			bearing, err := parseFloat(rec[2])
			if err != nil {
				return written, fmt.Errorf("line %d: %w", line, err)
			}
			tracker.SetAnchor(anchored, bearing)
		case "wind":
			speed, err := parseFloat(rec[1])
			if err != nil {
				return written, fmt.Errorf("line %d: %w", line, err)
			}
			angle, err := parseFloat(rec[2])
			if err != nil {
				return written, fmt.Errorf("line %d: %w", line, err)
			}
			res := engine.Derive(domain.RawWindSample{Speed: speed, RelativeAngleDegrees: angle})
			if err := enc.Encode(domain.ToDelta(res)); err != nil {
				return written, fmt.Errorf("line %d: encode delta: %w", line, err)
			}
			written++
		default:
			return written, fmt.Errorf("line %d: unknown row kind %q", line, rec[0])
		}
	}
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	return v, nil
}
