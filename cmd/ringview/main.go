// seehuhn.de/go/ringchart - geometry and rendering for ring charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command ringview renders a demo wallet privacy ring. Without flags it
// serves the rendered chart over HTTP for interactive inspection; with
// -png or -pdf it writes the chart to a file and exits.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"seehuhn.de/go/ringchart"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "HTTP listen address")
	size := flag.Int("size", 400, "chart size in pixels")
	pngOut := flag.String("png", "", "write a PNG file and exit")
	pdfOut := flag.String("pdf", "", "write a PDF file and exit")
	labels := flag.Bool("labels", false, "draw amount labels")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()

	ring := demoRing(float64(*size))

	rd := ringchart.NewRenderer()
	rd.Labels = *labels

	if *pngOut != "" || *pdfOut != "" {
		if *pngOut != "" {
			if err := writePNG(rd, ring, *pngOut, *size); err != nil {
				log.Fatal().Err(err).Msg("writing PNG")
			}
			log.Info().Str("file", *pngOut).Msg("PNG written")
		}
		if *pdfOut != "" {
			if err := ringchart.WritePDF(*pdfOut, ring, rd.Palette); err != nil {
				log.Fatal().Err(err).Msg("writing PDF")
			}
			log.Info().Str("file", *pdfOut).Msg("PDF written")
		}
		return
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, indexHTML, *size, *size)
	})

	r.Get("/ring.png", func(w http.ResponseWriter, req *http.Request) {
		px := *size
		if q := req.URL.Query().Get("size"); q != "" {
			if v, err := strconv.Atoi(q); err == nil && v > 0 && v <= 4096 {
				px = v
			}
		}

		// segments are immutable; a new size needs a fresh ring
		w.Header().Set("Content-Type", "image/png")
		if err := rd.EncodePNG(w, demoRing(float64(px)), px, px); err != nil {
			log.Error().Err(err).Msg("encoding ring")
		}
	})

	log.Info().Str("addr", *addr).Msg("serving ring preview")
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

const indexHTML = `<!DOCTYPE html>
<html><head><title>ringview</title></head>
<body style="background:#222;text-align:center">
<img src="/ring.png" width="%d" height="%d" alt="privacy ring">
</body></html>
`

func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			log.Debug().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		})
	}
}

func writePNG(rd *ringchart.Renderer, ring *ringchart.Ring, fname string, size int) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	return rd.EncodePNG(f, ring, size, size)
}

// coin is the demo value unit: an amount with an anonymity score.
type coin struct {
	amount float64
	conf   int
	score  float64
}

func (c coin) Amount() float64    { return c.amount }
func (c coin) Confirmed() bool    { return c.conf > 0 }
func (c coin) Confirmations() int { return c.conf }

// scoreClassifier thresholds the anonymity score: fully private at or
// above Full, semi-private at or above Semi.
type scoreClassifier struct {
	Full, Semi float64
}

func (cl scoreClassifier) IsPrivate(it ringchart.Item) bool {
	return it.(coin).score >= cl.Full
}

func (cl scoreClassifier) IsSemiPrivate(it ringchart.Item) bool {
	return it.(coin).score >= cl.Semi
}

// demoRing lays out a fixed demo wallet: one pocket of mixed coins plus
// a few single coins, with spans proportional to the amounts.
func demoRing(size float64) *ringchart.Ring {
	cl := scoreClassifier{Full: 50, Semi: 5}

	pocket := []ringchart.Item{
		coin{amount: 0.21, conf: 14, score: 80},
		coin{amount: 0.35, conf: 3, score: 64},
	}
	singles := []coin{
		{amount: 0.4, conf: 101, score: 30},
		{amount: 0.15, conf: 6, score: 10},
		{amount: 0.25, conf: 1, score: 1},
		{amount: 0.02, conf: 0, score: 1},
	}

	var total float64
	for _, c := range pocket {
		total += c.Amount()
	}
	for _, c := range singles {
		total += c.amount
	}

	var entries []ringchart.Entry
	pos := 0.0

	pocketShare := (pocket[0].Amount() + pocket[1].Amount()) / total
	entries = append(entries, ringchart.Entry{
		Source: ringchart.Aggregate(pocket),
		Start:  pos,
		End:    pos + pocketShare,
	})
	pos += pocketShare

	for _, c := range singles {
		share := c.amount / total
		entries = append(entries, ringchart.Entry{
			Source: ringchart.Single(c),
			Start:  pos,
			End:    pos + share,
		})
		pos += share
	}
	// absorb rounding so the ring closes exactly
	entries[len(entries)-1].End = 1

	return ringchart.NewRing(size, size, cl, entries)
}
