// doc.go — package documentation for errchain
//
// Package errchain is a tiny chainable error value with explicit ownership
// and pluggable allocation. It is designed to be:
//   - Cheap at call sites (a node per context step, no stacks, no codes)
//   - Accountable (every owned byte goes through an Allocator you choose)
//   - Interoperable with the stdlib (error, errors.Is/As, fmt.Formatter)
//
// # Building a Chain
//
// Chains grow by prepending context as an error travels up through layers:
//
//	e := errchain.New("connection refused")
//	e = errchain.Wrapf(e, "dial %s", addr)
//	e = errchain.Wrap(e, "load profile")
//	fmt.Println(e) // load profile: dial db:5432: connection refused
//	errchain.Destroy(e)
//
// Wrap* takes ownership of the inner error. Do not use the inner reference
// after passing it in; use the returned head instead.
//
// # Ownership
//
//	+------------------+-------------+----------------+------------------------+
//	| Constructor      | owns node?  | owns message?  | Notes                  |
//	+------------------+-------------+----------------+------------------------+
//	| New / NewBytes   | yes         | yes            | copies, truncates      |
//	| Static           | yes         | no             | borrows the string     |
//	| Newf             | yes         | yes            | fmt rendering          |
//	| OutOfMemory      | no          | no             | sentinel, never freed  |
//	| Empty            | no          | no             | sentinel, never freed  |
//	+------------------+-------------+----------------+------------------------+
//
// Constructors never return nil. A failed allocation yields OutOfMemory; a
// nil byte slice yields Empty. Wrapping around a nil inner error sets the
// cause to Empty, so Wrap(nil, "x") renders as "x: <Empty>".
//
// # Allocators
//
// A Factory is configured once and then shared:
//
//	f := errchain.NewFactory(
//	    errchain.WithAllocator(myPool),
//	    errchain.WithMaxLen(256),
//	)
//
// Destroy returns every owned buffer to the allocator that produced it, so a
// chain mixing factories is still released correctly. The package-level
// functions use Default(), a heap-backed factory with MaxLen = 1024.
//
// # Rendering
//
// Render walks a chain and hands fragments to a Sink. A negative sink status
// aborts the walk and is returned unchanged:
//
//	rc := errchain.Render("[ERR] ", e, "\n", errchain.SinkFunc(func(s string) int {
//	    return len(s)
//	}))
//
// Fprint binds Render to an io.Writer and reports -1 on write failure.
// Partial output already written is not undone.
//
// # Concurrency
//
// Sentinels and factories are immutable and safe to share. A chain has a
// single owner; there is no reference counting.
package errchain
