// Command bakery-loadgen emits a well-formed bakery command stream to
// stdout: a header, a handful of recipes, a replenishment burst, and a
// Poisson-paced schedule of ordine lines — suitable for piping into
// cmd/bakery for load testing and demos. It is the direct replacement for
// the teacher's runner binary (runner/runner.go): same purpose, synthetic
// load paced by a Poisson arrival process, new transport (a stdout pipe
// instead of an HTTP client hitting a live kitchen).
package main

import (
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"
)

var menu = []struct {
	name        string
	ingredients []string // flattened (ingredient, units) pairs
}{
	{"cake", []string{"flour", "2", "sugar", "1"}},
	{"bun", []string{"flour", "1"}},
	{"pie", []string{"flour", "3", "sugar", "2", "butter", "1"}},
}

var ingredients = []string{"flour", "sugar", "butter"}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bakery-loadgen [ticks] [rate]")
	fmt.Fprintln(os.Stderr, "  ticks: number of simulated ticks; each emits a Poisson-drawn count of ordine lines (default 20)")
	fmt.Fprintln(os.Stderr, "  rate:  Poisson lambda, expected orders per tick (default 2.5)")
}

func main() {
	ticks := 20
	rate := 2.5

	if len(os.Args) > 1 {
		if os.Args[1] == "-h" || os.Args[1] == "--help" {
			usage()
			return
		}
		n, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "bakery-loadgen: invalid ticks %q: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		ticks = n
	}
	if len(os.Args) > 2 {
		lambda, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bakery-loadgen: invalid rate %q: %v\n", os.Args[2], err)
			os.Exit(1)
		}
		rate = lambda
	}

	generate(os.Stdout, ticks, rate)
}

// generate writes the header, the recipe and replenishment setup, then a
// Poisson-distributed schedule of order lines. dist.Rand() determines how
// many orders arrive on each simulated tick — the same technique
// runner.run uses to decide how many HTTP orders to fire per second, here
// driving stdout lines per tick instead.
func generate(w *os.File, ticks int, rate float64) {
	fmt.Fprintln(w, "5 500")

	for _, dish := range menu {
		fmt.Fprintf(w, "aggiungi_ricetta %s %s\n", dish.name, joinFields(dish.ingredients))
	}

	replenishArgs := make([]string, 0, len(ingredients)*3)
	for _, ing := range ingredients {
		replenishArgs = append(replenishArgs, ing, "1000000", "1000000")
	}
	fmt.Fprintf(w, "rifornimento %s\n", joinFields(replenishArgs))

	dist := distuv.Poisson{Lambda: rate}
	for tick := 0; tick < ticks; tick++ {
		orders := int(dist.Rand())
		for i := 0; i < orders; i++ {
			dish := menu[(tick+i)%len(menu)]
			fmt.Fprintf(w, "ordine %s 1\n", dish.name)
		}
	}
}

func joinFields(fields []string) string {
	out := fields[0]
	for _, f := range fields[1:] {
		out += " " + f
	}
	return out
}
