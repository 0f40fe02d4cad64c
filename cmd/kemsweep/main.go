// Command kemsweep benchmarks gen/encap/decap over repeated trials and
// renders the timing series to an HTML chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"ternary-kem/ntru"
	"ternary-kem/prng"
	"ternary-kem/trits"
)

type sample struct {
	genUS   float64
	encapUS float64
	decapUS float64
}

func main() {
	trials := flag.Int("trials", 20, "number of gen/encap/decap trials")
	out := flag.String("out", "kemsweep.html", "chart output path")
	seed := flag.String("seed", "kemsweep", "deterministic PRNG seed")
	flag.Parse()

	p := prng.New(prng.KeyFromSeed([]byte(*seed)))
	nonce := trits.New(81)
	k := trits.New(ntru.KeySize)
	y := trits.New(ntru.EKeySize)
	dk := trits.New(ntru.KeySize)

	samples := make([]sample, 0, *trials)
	for i := 0; i < *trials; i++ {
		if !nonce.Inc() {
			log.Fatal("trial counter overflow")
		}

		t0 := time.Now()
		sk, pk, err := ntru.Gen(p, nonce)
		if err != nil {
			log.Fatalf("trial %d gen: %v", i, err)
		}
		t1 := time.Now()
		pk.Encr(p, nonce, k, y)
		t2 := time.Now()
		if err := sk.Decr(y, dk); err != nil {
			log.Fatalf("trial %d decap: %v", i, err)
		}
		t3 := time.Now()
		if !k.Equal(dk) {
			log.Fatalf("trial %d: recovered key differs", i)
		}

		samples = append(samples, sample{
			genUS:   float64(t1.Sub(t0).Microseconds()),
			encapUS: float64(t2.Sub(t1).Microseconds()),
			decapUS: float64(t3.Sub(t2).Microseconds()),
		})
	}

	report(samples)
	if err := render(samples, *out); err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}

func median(xs []float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return s[len(s)/2]
}

func report(samples []sample) {
	gen := make([]float64, len(samples))
	enc := make([]float64, len(samples))
	dec := make([]float64, len(samples))
	for i, s := range samples {
		gen[i], enc[i], dec[i] = s.genUS, s.encapUS, s.decapUS
	}
	fmt.Printf("trials: %d\n", len(samples))
	fmt.Printf("median gen:   %8.0f us\n", median(gen))
	fmt.Printf("median encap: %8.0f us\n", median(enc))
	fmt.Printf("median decap: %8.0f us\n", median(dec))
}

func render(samples []sample, path string) error {
	xs := make([]string, len(samples))
	genData := make([]opts.LineData, len(samples))
	encData := make([]opts.LineData, len(samples))
	decData := make([]opts.LineData, len(samples))
	for i, s := range samples {
		xs[i] = strconv.Itoa(i)
		genData[i] = opts.LineData{Value: s.genUS}
		encData[i] = opts.LineData{Value: s.encapUS}
		decData[i] = opts.LineData{Value: s.decapUS}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "KEM timing sweep",
			Subtitle: "per-trial gen/encap/decap, microseconds",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "trial"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "us"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)
	line.SetXAxis(xs).
		AddSeries("gen", genData).
		AddSeries("encap", encData).
		AddSeries("decap", decData)

	page := components.NewPage().SetPageTitle("KEM timing sweep")
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
