// Package bridge exposes the native reactive view tree to embedding hosts
// through a stable, pointer-sized handle surface.
//
// # Handles
//
// Every native object that crosses the boundary (view, action, binding,
// computed, context, subscription, animation, view list, string) is
// represented by a Handle: an opaque non-zero token minted by this package.
// Zero is the null/failure sentinel and is never a live handle.
//
// Handles are single-owner. A handle is valid from the moment its
// constructing function returns until it is passed to its matching Drop
// function; using it afterward, or dropping it twice, violates the contract.
// The registry detects stale and wrong-kind handles and fails fast on the
// native side (see Config.Validation); the response to misuse is not part
// of the stable contract and hosts must not rely on it.
//
// The only shared handle type is the execution context: CloneContext bumps
// a reference count and returns a new, independently droppable handle to
// the same underlying environment. All other duplication is forbidden;
// copying raw handle bytes does not duplicate ownership.
//
// # Threading
//
// The bridge is single-threaded and cooperative. Every call runs to
// completion on the calling thread; watcher callbacks fire synchronously
// from the mutation that triggered them and may nest. With
// Validation.EnforceUIThread enabled, calls off the pinned UI goroutine are
// reported as misuse.
//
// # Callbacks
//
// Watcher callbacks registered by hosts receive the lowered new value and a
// metadata handle. The metadata handle is valid only until the callback
// returns; the bridge invalidates it before the triggering Set returns and
// hosts must not retain it.
package bridge
