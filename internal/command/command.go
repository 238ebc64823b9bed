// Package command implements the NAVM-compatible command surface: NSE,
// CYC, VOL, RES, REM, INF, SAV, LOA and EXI, each dispatched against one
// reasoner.Reasoner and a save/load status.Store, grounded on the
// teacher's tool-dispatch idiom (string command name -> typed handler).
package command

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/narust/reasoner/internal/narsese"
	"github.com/narust/reasoner/internal/reasoner"
	"github.com/narust/reasoner/internal/status"
)

// Dispatcher owns the reasoner and save/load store a line-oriented (or MCP)
// front end drives commands against.
type Dispatcher struct {
	Reasoner *reasoner.Reasoner
	Store    status.Store

	// Neo4j, if set, receives a best-effort concept-network export on every
	// SAV whose snapshot encodes, before the payload is returned or stored.
	// Its failure never fails the SAV command.
	Neo4j *status.Neo4jExporter

	// Exit is set to true once an EXI command has been processed; a host
	// loop checks it after each Execute call to know when to stop reading.
	Exit bool
}

// New builds a Dispatcher over an already-constructed reasoner and store.
func New(r *reasoner.Reasoner, store status.Store) *Dispatcher {
	return &Dispatcher{Reasoner: r, Store: store}
}

func info(format string, args ...interface{}) reasoner.Output {
	return reasoner.Output{Kind: reasoner.Info, Text: fmt.Sprintf(format, args...)}
}

func errOut(format string, args ...interface{}) reasoner.Output {
	return reasoner.Output{Kind: reasoner.Error, Text: fmt.Sprintf(format, args...)}
}

func comment(format string, args ...interface{}) reasoner.Output {
	return reasoner.Output{Kind: reasoner.Comment, Text: fmt.Sprintf(format, args...)}
}

// Execute dispatches one line of NAVM input and returns the outputs it
// produced. A blank line produces no output, and a line whose first token is
// unrecognized yields a single ERROR record; the cycle always continues (§7).
func (d *Dispatcher) Execute(ctx context.Context, line string) []reasoner.Output {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	verb, rest := splitVerb(line)
	switch strings.ToUpper(verb) {
	case "NSE":
		return d.nse(rest)
	case "CYC":
		return d.cyc(rest)
	case "VOL":
		return d.vol(rest)
	case "RES":
		return d.res()
	case "REM":
		return []reasoner.Output{comment("%s", rest)}
	case "INF":
		return d.inf(rest)
	case "SAV":
		return d.sav(ctx, rest)
	case "LOA":
		return d.loa(rest)
	case "EXI":
		outputs := d.Flush()
		d.Exit = true
		return append(outputs, info("bye"))
	default:
		return []reasoner.Output{errOut("unknown command %q", verb)}
	}
}

func splitVerb(line string) (verb, rest string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

// nse folds and submits one Narsese sentence (§6.1/§6.2). A parse failure
// is an input error: reported as ERROR, no reasoner state is touched.
func (d *Dispatcher) nse(body string) []reasoner.Output {
	parsed, err := narsese.Parse(body)
	if err != nil {
		return []reasoner.Output{errOut("%v", err)}
	}
	out := d.Reasoner.Submit(reasoner.InputSentence{
		Content:     parsed.Content,
		Punctuation: parsed.Punctuation,
		Truth:       parsed.Truth,
	})
	return []reasoner.Output{out}
}

// cyc runs n work-cycle steps, defaulting to one when no count is given.
func (d *Dispatcher) cyc(arg string) []reasoner.Output {
	n := 1
	if arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil || v < 0 {
			return []reasoner.Output{errOut("CYC: invalid cycle count %q", arg)}
		}
		n = v
	}
	var outputs []reasoner.Output
	for i := 0; i < n; i++ {
		outputs = append(outputs, d.Reasoner.Cycle()...)
	}
	return outputs
}

// vol sets the 0-100 output-verbosity dial.
func (d *Dispatcher) vol(arg string) []reasoner.Output {
	v, err := strconv.Atoi(arg)
	if err != nil || v < 0 || v > 100 {
		return []reasoner.Output{errOut("VOL: volume must be an integer in [0,100], got %q", arg)}
	}
	d.Reasoner.Params.Volume = v
	return []reasoner.Output{info("volume set to %d", v)}
}

// res wipes memory, the task buffer and the clocks.
func (d *Dispatcher) res() []reasoner.Output {
	d.Reasoner.Reset()
	return []reasoner.Output{info("reasoner reset")}
}

// sav captures the current reasoner state and persists it under a name.
// When a Neo4j exporter is configured, it also best-effort-exports the
// concept network; export failure is reported as a COMMENT but never
// turns a successful SAV into an ERROR (§6.4: the export is not part of
// the persisted-state contract).
func (d *Dispatcher) sav(ctx context.Context, name string) []reasoner.Output {
	if name == "" {
		return []reasoner.Output{errOut("SAV: missing target")}
	}

	target, path := splitVerb(name)
	payload, err := status.Save(d.Reasoner)
	if err != nil {
		return []reasoner.Output{errOut("SAV: %v", err)}
	}

	var outputs []reasoner.Output
	if d.Neo4j != nil {
		if err := d.Neo4j.Export(ctx, d.Reasoner); err != nil {
			outputs = append(outputs, comment("neo4j export failed: %v", err))
		}
	}

	if path == "" || path == `""` {
		encoded := base64.StdEncoding.EncodeToString(payload)
		return append(outputs, info("%s", encoded))
	}

	if err := d.Store.Put(path, payload); err != nil {
		return append(outputs, errOut("SAV: %v", err))
	}
	return append(outputs, info("saved %s to %s (%s)", target, path, humanize.Bytes(uint64(len(payload)))))
}

// Flush reports any outputs produced but not yet emitted. Execute always
// returns every output a command produced before control returns, so
// there is nothing queued to drain; Flush exists so EXI's shutdown
// sequence has an explicit flush point, the way the original's command
// dispatch drains buffered OUT/COMMENT records before stopping.
func (d *Dispatcher) Flush() []reasoner.Output { return nil }

// loa restores a previously saved state. The second token is tried first
// as an inline base64 payload (the literal body a path-less SAV emitted),
// falling back to a Store lookup by path when it doesn't decode. A missing
// argument or a malformed payload each leave the current reasoner state
// untouched (§7's serialization-error class: ERROR, no partial mutation).
func (d *Dispatcher) loa(name string) []reasoner.Output {
	if name == "" {
		return []reasoner.Output{errOut("LOA: missing target")}
	}

	_, arg := splitVerb(name)
	if arg == "" {
		return []reasoner.Output{errOut("LOA: missing payload or path")}
	}

	payload, ok := decodeInlinePayload(arg)
	if !ok {
		stored, err := d.Store.Get(arg)
		if err != nil {
			return []reasoner.Output{errOut("LOA: %v", err)}
		}
		payload = stored
	}

	if err := status.Load(d.Reasoner, payload); err != nil {
		return []reasoner.Output{errOut("LOA: %v", err)}
	}
	return []reasoner.Output{info("loaded")}
}

// decodeInlinePayload recognizes a literal base64-encoded snapshot passed
// directly in the command line, as opposed to a Store path reference.
func decodeInlinePayload(arg string) ([]byte, bool) {
	decoded, err := base64.StdEncoding.DecodeString(arg)
	if err != nil {
		return nil, false
	}
	if _, err := status.Decode(decoded); err != nil {
		return nil, false
	}
	return decoded, true
}
