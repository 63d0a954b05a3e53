// Package sched assembles the configuration handed to the external survey
// scheduler and simulation driver.
//
// # Reading Guide
//
// Start with these three files to understand the assembly pipeline:
//   - basis.go: the basis-function catalog (scoring terms and masks)
//   - survey.go: survey strategies (greedy, blob, scripted) and their weights
//   - driver.go: the run manifest and external driver handoff
//
// # Architecture
//
// The package builds data, not behavior: each generator (greedy.go, blobs.go,
// twilight.go, longgaps.go) loops over a fixed filter list and appends
// (basis function, weight) pairs with conditional inclusion based on whether
// the filter is paired, then wraps the lists into survey objects. Surveys are
// grouped into priority tiers by CoreScheduler and serialized into a run
// manifest. The scheduler's score evaluation, the reward-maximization
// selection loop, the rolling-footprint cadence algorithm, and the
// observation database all live in the external driver; this package only
// records their inputs.
//
// Sub-packages:
//   - sched/skyarea: HEALPix footprint map construction (sky-area labels,
//     Euclid contour overlap, ecliptic target band)
//   - sched/ddf: pre-scheduled deep-drilling-field observation sequences
//   - sched/plotmap: footprint map rendering to PNG
package sched
