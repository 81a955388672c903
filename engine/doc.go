// Package engine is the request-scoped facade over the admix core: it owns
// the immutable reference-table snapshots, resolves target specifications
// into plain vectors, assembles candidate pools per request policy, and wires
// structured logging plus Prometheus instrumentation around the search.
//
// 🚀 What does the engine add on top of model/mixture/differential?
//
//	The algorithm packages are pure functions over in-memory values. The
//	engine supplies the surrounding machinery a caller (a bot command layer,
//	a job runner) actually talks to:
//	  • Table snapshots — the reference-population universe and the saved
//	    user samples live in immutable Tables swapped in atomically; a
//	    reload never mutates a table a running search may be reading.
//	  • TargetSpec  — a tagged variant (ByName | ByPopulation | Inline)
//	    resolved exactly once, before the core ever runs; the core only
//	    sees plain vectors.
//	  • Pool policy — explicit population/sample name lists, or the
//	    nearest-K auto-selection pre-filter.
//	  • Observability — zap logging and Prometheus counters/histograms for
//	    searches, solver invocations, durations and degenerate fits.
//
// The engine performs no I/O and spawns no background goroutines: loading
// coordinate data, persistence and any network surface stay with the caller.
//
// ⚙️ Usage:
//
//	cfg, _ := engine.FromEnv()             // or engine.DefaultConfig()
//	eng, err := engine.New(cfg, logger)    // nil logger ⇒ no-op logger
//	eng.SwapReferences(engine.NewTable(referencePoints))
//
//	report, err := eng.Model(ctx, engine.Request{
//	  Target: engine.Inline(vec),
//	  Orders: []int{2, 3, 4},
//	})
package engine
