// Package aggregate provides the event-sourced aggregate contract shared by
// every aggregate in the domain.
//
// Behaviors are plain functions from current state to a Decision: either a
// rule violation, or the events the behavior emits. Root runs a behavior,
// folds the accepted events into its state with the fold function registered
// for the aggregate type, and appends them to an ordered list of pending
// events for later persistence and dispatch:
//
//	root := aggregate.New(id, lifecycle.State{}, lifecycle.Fold)
//	if err := root.Replay(history); err != nil { ... }
//	if err := root.Execute(lifecycle.Activate()); err != nil { ... }
//	events := root.PendingEvents()
//
// A Root is single-writer: concurrent behaviors on the same instance are not
// supported and must be serialized by the caller.
package aggregate
