// ════════════════════════════════════════════════════════════════════════════════════════════════
// spscring - Soak Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Orchestration
//
// Description:
//   Runs the two soak disciplines against the SPSC ring with the tunables
//   in package constants, prints each report as JSON, and appends both runs
//   to the sqlite journal.
//
// Phases:
//   - Phase 1: strict run, producer and consumer on pinned cores
//   - Phase 2: overwrite run, bursts that lap the reader
//   - Phase 3: journal append and exit status
//
// Exit status is non-zero when the strict run is not intact or any phase
// fails.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"os"
	"os/signal"
	"syscall"

	"spscring/constants"
	"spscring/control"
	"spscring/debug"
	"spscring/journal"
	"spscring/ringdump"
	"spscring/soak"
	"spscring/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	setupSignalHandling()

	j, err := journal.Open(constants.JournalPath)
	if err != nil {
		debug.DropError("JOURNAL", err)
		return 1
	}
	defer j.Close()

	stop, hot := control.Flags()
	base := soak.Config{
		Slots:         constants.RingSlots,
		ProducerCore:  constants.ProducerCore,
		ConsumerCore:  constants.ConsumerCore,
		Stop:          stop,
		Hot:           hot,
		Activity:      control.SignalActivity,
		ActivityEvery: constants.ActivityEvery,
		Idle:          control.PollCooldown,
	}

	// PHASE 1: strict
	strict := base
	strict.Mode = soak.ModeStrict
	strict.Items = constants.StrictItems
	strictRes, ok := runPhase(j, strict)
	if !ok {
		return 1
	}

	// PHASE 2: overwrite
	over := base
	over.Mode = soak.ModeOverwrite
	over.Items = constants.OverwriteItems
	over.Burst = constants.OverwriteBurst
	if _, ok := runPhase(j, over); !ok {
		return 1
	}

	// PHASE 3: verdict
	if !strictRes.Intact() {
		debug.DropMessage("VERDICT", "strict run lost or reordered records")
		return 1
	}
	debug.DropMessage("VERDICT", "strict run intact")
	return 0
}

// runPhase executes one soak run, reports it and journals it.
func runPhase(j *journal.Journal, cfg soak.Config) (soak.Result, bool) {
	debug.DropMessage("SOAK", string(cfg.Mode)+": "+utils.Itoa(cfg.Items)+" records through "+utils.Itoa(cfg.Slots)+" slots")

	res, err := soak.Run(cfg)
	if err != nil {
		debug.DropError("SOAK", err)
		return res, false
	}

	debug.DropMessage("RING", ringdump.Line(res.Final))
	debug.DropMessage("RESULT",
		"popped="+utils.Itoa(int(res.Popped))+
			" lost="+utils.Itoa(int(res.Lost()))+
			" overflows="+utils.Itoa(int(res.Overflows))+
			" elapsed="+res.Elapsed.String())

	report, err := ringdump.Marshal(res)
	if err != nil {
		debug.DropError("REPORT", err)
		return res, false
	}
	utils.PrintInfo(utils.B2s(append(report, '\n')))

	id, err := j.Record(res)
	if err != nil {
		debug.DropError("JOURNAL", err)
		return res, false
	}
	debug.DropMessage("JOURNAL", "run "+utils.Itoa(int(id))+" recorded")

	if res.Aborted {
		debug.DropMessage("SOAK", "aborted by signal")
		return res, false
	}
	return res, true
}

// setupSignalHandling turns SIGINT/SIGTERM into control.Shutdown so the
// producer stops at the next record and the run still gets journalled.
func setupSignalHandling() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		debug.DropMessage("SIGNAL", "shutdown requested")
		control.Shutdown()
	}()
}
