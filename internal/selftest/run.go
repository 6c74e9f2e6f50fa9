// Package selftest re-derives the arithmetic laws over randomized inputs
// and declarative vector suites, in parallel batches. It backs the
// `peano selftest` command; the unit tests cover the same laws over fixed
// values, this engine covers breadth.
package selftest

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"peano/internal/bignum"
	"peano/internal/testkit"
	"peano/internal/vectors"
)

// Status describes the lifecycle of one batch.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports batch progress to an attached sink.
type Event struct {
	Batch  string
	Status Status
	Err    error
}

// Sink receives progress events.
type Sink interface {
	Send(Event)
}

// ChannelSink forwards events to a channel, dropping nothing.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Send(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

// Request configures a selftest run.
type Request struct {
	Samples  int    // randomized samples per batch; <=0 selects the default
	Jobs     int    // parallel workers; <=0 selects NumCPU
	Seed     uint64 // base seed for the deterministic value streams
	MaxBits  int    // magnitude width cap; <=0 selects the default
	Vectors  string // optional TOML vector-suite path
	Progress Sink   // optional progress sink
}

// Result summarizes a run. Law violations are data, not run errors: the
// run itself fails only on infrastructure problems such as an unreadable
// vector file.
type Result struct {
	Checked  int
	Failures []error
}

const (
	defaultSamples = 2000
	defaultMaxBits = 192
)

type batch struct {
	name string
	run  func(g *gen, samples int) (checked int, failures []error)
}

// BatchNames lists the batches a request would run, in order; the progress
// UI uses it to lay out its rows before the run starts.
func BatchNames(req *Request) []string {
	names := make([]string, 0, len(coreBatches)+1)
	for _, b := range coreBatches {
		names = append(names, b.name)
	}
	if req != nil && req.Vectors != "" {
		names = append(names, "vectors")
	}
	return names
}

var coreBatches = []batch{
	{"embedding", func(g *gen, samples int) (int, []error) {
		var failures []error
		for range samples {
			if err := testkit.CheckEmbedding(g.nat()); err != nil {
				failures = append(failures, err)
			}
			if err := testkit.CheckEmbeddingHom(g.nat(), g.nat()); err != nil {
				failures = append(failures, err)
			}
		}
		return samples, failures
	}},
	{"ring-laws", func(g *gen, samples int) (int, []error) {
		var failures []error
		for range samples {
			if err := testkit.CheckRingLaws(g.int(), g.int(), g.int()); err != nil {
				failures = append(failures, err)
			}
		}
		return samples, failures
	}},
	{"division-laws", func(g *gen, samples int) (int, []error) {
		var failures []error
		for range samples {
			if err := testkit.CheckDivisionLaws(g.int(), g.divisor()); err != nil {
				failures = append(failures, err)
			}
		}
		return samples, failures
	}},
	{"codec", func(g *gen, samples int) (int, []error) {
		encode := func(v bignum.Int) ([]byte, error) { return msgpack.Marshal(&v) }
		decode := func(raw []byte) (bignum.Int, error) {
			var v bignum.Int
			err := msgpack.Unmarshal(raw, &v)
			return v, err
		}
		var failures []error
		for range samples {
			if err := testkit.CheckCodecRoundTrip(g.int(), encode, decode); err != nil {
				failures = append(failures, err)
			}
		}
		return samples, failures
	}},
}

// Run executes all batches in parallel and collects law violations.
func Run(ctx context.Context, req *Request) (Result, error) {
	if req == nil {
		return Result{}, fmt.Errorf("missing selftest request")
	}
	samples := req.Samples
	if samples <= 0 {
		samples = defaultSamples
	}
	maxBits := req.MaxBits
	if maxBits <= 0 {
		maxBits = defaultMaxBits
	}
	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	batches := make([]batch, len(coreBatches), len(coreBatches)+1)
	copy(batches, coreBatches)
	if req.Vectors != "" {
		suite, err := vectors.Load(req.Vectors)
		if err != nil {
			return Result{}, err
		}
		batches = append(batches, batch{"vectors", func(*gen, int) (int, []error) {
			return len(suite.Cases), suite.Run()
		}})
	}

	for _, b := range batches {
		send(req.Progress, Event{Batch: b.name, Status: StatusQueued})
	}

	var (
		mu     sync.Mutex
		result Result
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, b := range batches {
		// Every batch gets its own seeded stream so runs reproduce
		// regardless of scheduling order.
		offset, err := safecast.Conv[uint64](i)
		if err != nil {
			return Result{}, err
		}
		g := newGen(req.Seed+offset, maxBits)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			send(req.Progress, Event{Batch: b.name, Status: StatusWorking})
			checked, failures := b.run(g, samples)

			mu.Lock()
			result.Checked += checked
			result.Failures = append(result.Failures, failures...)
			mu.Unlock()

			st := StatusDone
			var evErr error
			if len(failures) > 0 {
				st = StatusError
				evErr = failures[0]
			}
			send(req.Progress, Event{Batch: b.name, Status: st, Err: evErr})
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return result, err
	}
	return result, nil
}

func send(sink Sink, ev Event) {
	if sink != nil {
		sink.Send(ev)
	}
}
