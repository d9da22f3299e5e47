// Package snapshot defines the storage contract between time-stepping
// solvers and the estimation pipeline, plus an in-memory recorder that
// satisfies it.
//
// A solver that supports output capture appends one row per named field at
// every captured step; consumers later read whole fields back as immutable
// (time × space) blocks with their exact time and space axes attached.
//
// The core consumes only the read side (Store). Anything able to hand back
// a Field per name — an in-memory recorder, a file reader — can feed the
// pipeline.
//
// Concurrency: a Recorder is owned by the single realization that writes
// it and is not safe for concurrent use.
package snapshot
