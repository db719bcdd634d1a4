// ════════════════════════════════════════════════════════════════════════════════════════════════
// SPSC Soak Harness
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: End-to-end ring verification
//
// Description:
//   Streams deterministic records through a ringbuffer.Ring and proves what
//   came out. Both ends fold every record they touch into a Keccak-256
//   digest; equal digests mean the consumer saw exactly the producer's
//   stream, byte for byte and in order.
//
// Modes:
//   - strict:    producer on a pinned goroutine (PushWait, never
//                overwrites), consumer on a PinnedConsumer. Must be intact.
//                Neither pinned thread survives the run.
//   - overwrite: single goroutine, unguarded Push in bursts larger than the
//                ring, then a TryPop drain. Exercises the overflow signal;
//                losses are expected and counted.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package soak

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"sync/atomic"
	"time"

	"spscring/ringbuffer"

	"golang.org/x/crypto/sha3"
)

// Mode selects the producer discipline.
type Mode string

const (
	ModeStrict    Mode = "strict"
	ModeOverwrite Mode = "overwrite"
)

var (
	ErrNoItems = errors.New("soak: item count must be positive")
	ErrMode    = errors.New("soak: unknown mode")
	ErrBurst   = errors.New("soak: burst must not be negative")
)

// activityEvery is how often, in records, the producer calls
// Config.Activity when Config.ActivityEvery is zero.
const activityEvery = 4096

// Config describes one soak run. Only Mode, Slots and Items are required.
type Config struct {
	Mode  Mode
	Slots int // ring capacity, sacrificed slot included
	Items int // records to produce
	Burst int // overwrite mode: pushes per drain; 0 means Slots

	ProducerCore int
	ConsumerCore int

	Stop          *uint32 // polled by the producer; non-zero aborts the run
	Hot           *uint32 // consumer hot flag; a private flag when nil
	Activity      func()  // called every ActivityEvery records
	ActivityEvery int
	Idle          func() // consumer idle hook (strict mode)
}

// Result is the outcome of one run.
type Result struct {
	Mode           Mode             `json:"mode"`
	Slots          int              `json:"slots"`
	Items          uint64           `json:"items"`
	Popped         uint64           `json:"popped"`
	Overflows      uint64           `json:"overflows"`
	OutOfOrder     uint64           `json:"out_of_order"`
	Corrupt        uint64           `json:"corrupt"`
	Aborted        bool             `json:"aborted"`
	ProducerDigest string           `json:"producer_digest"`
	ConsumerDigest string           `json:"consumer_digest"`
	Elapsed        time.Duration    `json:"elapsed_ns"`
	Final          ringbuffer.Stats `json:"final"`
}

// Intact reports whether a strict run delivered every record unchanged and
// in order.
func (r Result) Intact() bool {
	return r.Mode == ModeStrict &&
		!r.Aborted &&
		r.Popped == r.Items &&
		r.OutOfOrder == 0 &&
		r.Corrupt == 0 &&
		r.ProducerDigest == r.ConsumerDigest
}

// Lost returns how many produced records never reached the consumer.
func (r Result) Lost() uint64 {
	if r.Popped > r.Items {
		return 0
	}
	return r.Items - r.Popped
}

// Run executes one soak run. The ring storage is allocated here; the ring
// itself never allocates.
func Run(cfg Config) (Result, error) {
	if cfg.Items <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNoItems, cfg.Items)
	}
	if cfg.Burst < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrBurst, cfg.Burst)
	}
	if cfg.Mode != ModeStrict && cfg.Mode != ModeOverwrite {
		return Result{}, fmt.Errorf("%w: %q", ErrMode, cfg.Mode)
	}
	r, err := ringbuffer.New(make([]Record, cfg.Slots), cfg.Slots)
	if err != nil {
		return Result{}, fmt.Errorf("soak: %w", err)
	}

	res := Result{Mode: cfg.Mode, Slots: cfg.Slots}
	p := newProducer(cfg)
	c := newTally()

	start := time.Now()
	if cfg.Mode == ModeStrict {
		runStrict(cfg, r, p, c, &res)
	} else {
		runOverwrite(cfg, r, p, c, &res)
	}
	res.Elapsed = time.Since(start)

	res.Popped = c.popped
	res.OutOfOrder = c.outOfOrder
	res.Corrupt = c.corrupt
	res.ProducerDigest = hex.EncodeToString(p.h.Sum(nil))
	res.ConsumerDigest = hex.EncodeToString(c.h.Sum(nil))
	res.Final = r.Stats()
	return res, nil
}

func runStrict(cfg Config, r *ringbuffer.Ring[Record], p *producer, c *tally, res *Result) {
	var stop uint32
	hot := cfg.Hot
	if hot == nil {
		hot = new(uint32)
	}
	atomic.StoreUint32(hot, 1)

	done := make(chan struct{})
	ringbuffer.PinnedConsumerWithIdle(cfg.ConsumerCore, r, &stop, hot, c.observe, cfg.Idle, done)

	// The producer gets its own goroutine so its pinned thread dies with it.
	produced := make(chan struct{})
	go func() {
		defer close(produced)
		ringbuffer.LockToCore(cfg.ProducerCore)
		for i := 0; i < cfg.Items; i++ {
			if p.aborted() {
				res.Aborted = true
				return
			}
			rec := p.next()
			r.PushWait(&rec)
			res.Items++
		}
	}()
	<-produced

	atomic.StoreUint32(hot, 0)
	atomic.StoreUint32(&stop, 1)
	<-done
}

func runOverwrite(cfg Config, r *ringbuffer.Ring[Record], p *producer, c *tally, res *Result) {
	burst := cfg.Burst
	if burst == 0 {
		burst = cfg.Slots
	}

	var rec Record
	for i := 0; i < cfg.Items; {
		if p.aborted() {
			res.Aborted = true
			break
		}
		for b := 0; b < burst && i < cfg.Items; b, i = b+1, i+1 {
			rec = p.next()
			if r.Push(&rec) {
				res.Overflows++
			}
			res.Items++
		}
		for r.TryPop(&rec) {
			c.observe(&rec)
		}
	}
}

// producer generates and digests the outgoing stream.
type producer struct {
	h       hash.Hash
	scratch [recordSize]byte
	seq     uint64

	stop     *uint32
	activity func()
	every    uint64
}

func newProducer(cfg Config) *producer {
	every := uint64(cfg.ActivityEvery)
	if every == 0 {
		every = activityEvery
	}
	return &producer{
		h:        sha3.NewLegacyKeccak256(),
		stop:     cfg.Stop,
		activity: cfg.Activity,
		every:    every,
	}
}

func (p *producer) next() Record {
	rec := MakeRecord(p.seq)
	rec.hashInto(p.h, &p.scratch)
	if p.activity != nil && p.seq%p.every == 0 {
		p.activity()
	}
	p.seq++
	return rec
}

func (p *producer) aborted() bool {
	return p.stop != nil && atomic.LoadUint32(p.stop) != 0
}

// tally digests and checks the incoming stream. It is only touched by the
// consumer until the run joins.
type tally struct {
	h       hash.Hash
	scratch [recordSize]byte

	popped     uint64
	outOfOrder uint64
	corrupt    uint64
	last       uint64
}

func newTally() *tally {
	return &tally{h: sha3.NewLegacyKeccak256()}
}

func (t *tally) observe(rec *Record) {
	if t.popped > 0 && rec.Seq <= t.last {
		t.outOfOrder++
	}
	if !rec.Valid() {
		t.corrupt++
	}
	t.last = rec.Seq
	t.popped++
	rec.hashInto(t.h, &t.scratch)
}
