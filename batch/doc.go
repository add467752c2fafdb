// Package batch evaluates lists of special-function requests concurrently.
//
// A request names a function and its arguments:
//
//	requests:
//	  - {id: median, fn: pinv, args: [2, 0.5]}
//	  - {id: g5,     fn: gamma, args: [5]}
//
// Runner.Run fans the requests out over a bounded errgroup, keeps the input
// order in its result slice and records per-request failures in Result.Err
// without aborting the batch. Cancelling the context stops the batch.
package batch
