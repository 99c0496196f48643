package yaz0

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Result is one decoded block.
type Result struct {
	Block
	Data   []byte // Decoded bytes, len(Data) == Header.Size.
	Digest uint32 // xxHash32 of Data.
}

// DecodeAll locates every block in src and decodes them. Results are
// returned in file order.
// With opts.Concurrency == 1 each block is decoded in the same sequential
// pass that finds its end. Otherwise block boundaries are found first, which
// walks every payload once without output, and the payloads are then decoded
// on up to opts.Concurrency goroutines, so each payload is walked twice.
// It returns ErrNoBlockFound if src holds no decodable block.
// Options nil means DefaultOptions().
func DecodeAll(ctx context.Context, src []byte, opts *Options) ([]Result, error) {
	opts = opts.orDefault()
	sequential := opts.Concurrency == 1

	var results []Result
	var scanErr error
	walk(src, opts, sequential, func(blk Block, data []byte, err error) bool {
		if scanErr = ctx.Err(); scanErr != nil {
			return false
		}

		if err != nil {
			if !opts.SkipCorrupt {
				scanErr = err
				return false
			}
			var be *BlockError
			if opts.OnSkip != nil && errors.As(err, &be) {
				opts.OnSkip(be)
			}
			return true
		}

		r := Result{Block: blk}
		if sequential {
			r.Data, r.Digest = data, Digest(data)
		}
		results = append(results, r)
		return true
	})
	if scanErr != nil {
		return nil, scanErr
	}

	if len(results) == 0 {
		return nil, ErrNoBlockFound
	}
	if sequential {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i := range results {
		r := &results[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := r.Decode(src)
			if err != nil {
				return &BlockError{Index: r.Index, Offset: r.Offset, Err: err}
			}

			r.Data, r.Digest = data, Digest(data)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
