// Package spp is the root of a strip-packing branch-and-bound toolkit.
//
// 🧩 What is spp?
//
//	An exact solver for the two-dimensional Strip Packing Problem: given
//	a fixed-width strip and a set of rectangular items, place every item
//	without overlap so the used height is minimised. The application
//	framing is job scheduling — width is a job's resource footprint,
//	height is its runtime, the strip width is the machine's capacity,
//	and the objective is makespan.
//
// ✨ Why this layout?
//
//   - Small, focused packages — each module owns one concern
//   - Deterministic           — no time-based randomness; Seed drives any RNG
//   - Exact when asked        — ALL_PERMUTATIONS search is optimal
//   - Pure Go core            — the solver itself has zero third-party dependencies
//
// Under the hood:
//
//	item/                  — Item and Instance value types
//	layout/                — PartialLayout, Placement, incumbent bookkeeping
//	corner/                — corner-point candidate generator
//	order/                 — ordering heuristics used to seed the search
//	bound/                 — continuous bound and Martello-Vigo first bound
//	spp/                   — the branch-and-bound engine and its dispatcher
//	internal/geninstance/  — random instance generation (ambient, not core)
//	internal/bench/        — compare harness across orderings and instance sizes
//	internal/resultsfile/  — results-file persistence
//	internal/config/       — TOML-driven harness configuration
//	internal/cli/          — cobra commands and structured logging
//	cmd/sppbench/          — the CLI entry point
//
// See SPEC_FULL.md and DESIGN.md at the repository root for the full
// requirements and grounding ledger.
//
//	go get github.com/mvstrip/spp/spp
package spp
