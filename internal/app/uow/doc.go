// Package uow provides the staged document collections and the unit of work
// that owns them for one logical command.
//
// A UnitOfWork lazily creates exactly one Collection per document type and
// buffers writes in memory until End:
//
//	u := uow.New(store)
//	u.Begin()
//
//	// Stage writes; nothing reaches the store yet.
//	err := uow.Add(u, id, Order{...})
//
//	// Commit every collection, in the order they were first used.
//	err = u.End(ctx, err)
//
// End commits collections one after another. There is no rollback: if a
// later collection fails, earlier ones stay committed and the failure is
// reported as a *PartialCommitError. Deciding whether to retry or compensate
// belongs to the caller.
//
// A UnitOfWork is NOT safe for concurrent use.
package uow
