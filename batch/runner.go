// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvgamma/numerr"
)

// Runner evaluates requests concurrently against one shared Evaluators.
type Runner struct {
	ev   *Evaluators
	opts Options
}

// NewRunner returns a Runner, or ErrNilEvaluators.
func NewRunner(ev *Evaluators, opts ...Option) (*Runner, error) {
	if ev == nil || ev.Gamma == nil || ev.IncGamma == nil {
		return nil, ErrNilEvaluators
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return &Runner{ev: ev, opts: o}, nil
}

// Workers reports the concurrency limit.
func (r *Runner) Workers() int { return r.opts.Workers }

// Run evaluates reqs and returns one Result per request in input order.
// Evaluation failures are stored in Result.Err and do not stop the batch;
// the returned error is non-nil only when ctx is done before all requests ran.
func (r *Runner) Run(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i := range reqs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.evaluate(reqs[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}

func (r *Runner) evaluate(req Request) Result {
	start := time.Now()
	v, err := Evaluate(r.ev, req.Fn, req.Args)
	d := time.Since(start)

	log := r.opts.Logger.With(zap.String("id", req.ID), zap.String("fn", req.Fn))
	if err != nil {
		log.Warn("evaluation failed",
			zap.Float64s("args", req.Args),
			zap.String("category", numerr.Classify(err).String()),
			zap.Error(err))
	} else {
		log.Debug("evaluated", zap.Float64("value", v), zap.Duration("took", d))
	}
	r.opts.Metrics.observe(req.Fn, err, d)

	return Result{Request: req, Value: v, Err: err, Duration: d}
}
