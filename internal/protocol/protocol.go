// Package protocol is the stdin/stdout adapter in front of the bakery
// engine: it turns whitespace-delimited stdin lines into calls against a
// *bakery.Engine and turns engine results back into the exact status
// strings the wire format expects. It owns no simulation state of its own.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ben-mays/bakery/internal/bakery"
)

const maxLineLength = 1 << 20

// Options tunes Run's behavior beyond the bare protocol contract. The zero
// value is fully spec-faithful: no seeding, abort on the first malformed
// line, diagnostics (written only in Lenient mode) sent to os.Stderr.
type Options struct {
	// SeedRecipesPath, if non-empty, names a YAML file of recipes (see
	// ParseSeedFile) registered before the first stdin command line is
	// read. Seeding never produces protocol output — it happens entirely
	// outside the command stream.
	SeedRecipesPath string

	// Lenient, when true, logs a malformed line to Diagnostics and skips it
	// instead of aborting the run. The zero value (false) keeps the strict
	// contract: no recovery, stop on the first malformed line.
	Lenient bool

	// Diagnostics receives the one-line-per-skipped-command log Lenient
	// mode produces. Defaults to os.Stderr when nil; never stdout.
	Diagnostics io.Writer
}

// Run reads a full command stream from r and writes one status line per
// command (plus any triggered courier block) to w, using the zero-value
// Options. The first line is the two-integer courier_interval/courier_capacity
// header; the engine itself is constructed only once that header is known,
// since those values arrive over the wire rather than from configuration
// (see internal/settings). Run returns a non-nil error on any malformed
// line — there is no recovery, the caller decides how to report and exit.
func Run(r io.Reader, w io.Writer) error {
	return RunWithOptions(r, w, Options{})
}

// RunWithOptions is Run with seeding and leniency controlled by opts.
func RunWithOptions(r io.Reader, w io.Writer, opts Options) error {
	if opts.Diagnostics == nil {
		opts.Diagnostics = os.Stderr
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), maxLineLength)

	if !scanner.Scan() {
		return fmt.Errorf("protocol: missing header line")
	}
	interval, capacity, err := parseHeader(scanner.Text())
	if err != nil {
		return err
	}

	engine := bakery.New(interval, capacity)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	if opts.SeedRecipesPath != "" {
		recipes, err := ParseSeedFile(opts.SeedRecipesPath)
		if err != nil {
			return fmt.Errorf("protocol: seed recipes: %w", err)
		}
		for _, rec := range recipes {
			engine.AddRecipe(rec.Name, rec.Ingredients)
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := dispatch(engine, bw, line); err != nil {
			if opts.Lenient {
				fmt.Fprintf(opts.Diagnostics, "protocol: skipping malformed line %q: %v\n", line, err)
				continue
			}
			return err
		}
	}
	return scanner.Err()
}

func parseHeader(line string) (interval, capacity int64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("protocol: malformed header line %q", line)
	}
	interval, err = strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("protocol: malformed courier_interval %q: %w", fields[0], err)
	}
	capacity, err = strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("protocol: malformed courier_capacity %q: %w", fields[1], err)
	}
	if interval <= 0 || capacity <= 0 {
		return 0, 0, fmt.Errorf("protocol: header values must be positive, got %q", line)
	}
	return interval, capacity, nil
}

// dispatch decodes one command line, executes it against engine, and writes
// its status line followed by any courier block the resulting tick
// triggers: the clock advances after the command is handled, then the
// courier runs if it's due.
func dispatch(e *bakery.Engine, w *bufio.Writer, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "aggiungi_ricetta":
		return addRecipe(e, w, fields[1:])
	case "rimuovi_ricetta":
		return removeRecipe(e, w, fields[1:])
	case "rifornimento":
		return replenish(e, w, fields[1:])
	case "ordine":
		return order(e, w, fields[1:])
	default:
		return fmt.Errorf("protocol: unknown command %q", fields[0])
	}
}

func addRecipe(e *bakery.Engine, w *bufio.Writer, args []string) error {
	if len(args) < 3 || len(args)%2 != 1 {
		return fmt.Errorf("protocol: malformed aggiungi_ricetta line")
	}
	name := args[0]
	pairs := args[1:]
	ingredients := make([]bakery.IngredientSpec, len(pairs)/2)
	for i := range ingredients {
		units, err := strconv.ParseInt(pairs[2*i+1], 10, 64)
		if err != nil {
			return fmt.Errorf("protocol: malformed units %q: %w", pairs[2*i+1], err)
		}
		ingredients[i] = bakery.IngredientSpec{Name: pairs[2*i], UnitsPerBatch: units}
	}

	switch e.AddRecipe(name, ingredients) {
	case bakery.Added:
		fmt.Fprintln(w, "aggiunta")
	case bakery.Exists:
		fmt.Fprintln(w, "ignorato")
	}
	tick(e, w)
	return nil
}

func removeRecipe(e *bakery.Engine, w *bufio.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("protocol: malformed rimuovi_ricetta line")
	}

	switch e.RemoveRecipe(args[0]) {
	case bakery.Removed:
		fmt.Fprintln(w, "rimossa")
	case bakery.NotFound:
		fmt.Fprintln(w, "non presente")
	case bakery.HasOrders:
		fmt.Fprintln(w, "ordini in sospeso")
	}
	tick(e, w)
	return nil
}

func replenish(e *bakery.Engine, w *bufio.Writer, args []string) error {
	if len(args) < 3 || len(args)%3 != 0 {
		return fmt.Errorf("protocol: malformed rifornimento line")
	}

	items := make([]bakery.ReplenishSpec, len(args)/3)
	for i := range items {
		qty, err := strconv.ParseInt(args[3*i+1], 10, 64)
		if err != nil {
			return fmt.Errorf("protocol: malformed quantity %q: %w", args[3*i+1], err)
		}
		exp, err := strconv.ParseInt(args[3*i+2], 10, 64)
		if err != nil {
			return fmt.Errorf("protocol: malformed expiration %q: %w", args[3*i+2], err)
		}
		items[i] = bakery.ReplenishSpec{Name: args[3*i], Quantity: qty, Expiration: exp}
	}

	e.Replenish(items)
	fmt.Fprintln(w, "rifornito")
	tick(e, w)
	return nil
}

func order(e *bakery.Engine, w *bufio.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("protocol: malformed ordine line")
	}
	qty, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("protocol: malformed order quantity %q: %w", args[1], err)
	}

	switch e.PlaceOrder(args[0], qty) {
	case bakery.Accepted:
		fmt.Fprintln(w, "accettato")
	case bakery.Rejected:
		fmt.Fprintln(w, "rifiutato")
	}
	tick(e, w)
	return nil
}

// tick advances the clock and, if the courier condition now holds, emits its
// block immediately after the status line just written: the courier block
// always follows the command line that triggered it, so ordering here is
// just call sequence.
func tick(e *bakery.Engine, w *bufio.Writer) {
	if !e.Advance() {
		return
	}
	shipments := e.RunCourier()
	if len(shipments) == 0 {
		fmt.Fprintln(w, "camioncino vuoto")
		return
	}
	for _, s := range shipments {
		fmt.Fprintf(w, "%d %s %d\n", s.Time, s.Recipe, s.Quantity)
	}
}
