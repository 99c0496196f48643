package yaz0

import "runtime"

// Options configures Locate and DecodeAll behavior.
type Options struct {
	// Concurrency bounds how many blocks DecodeAll decodes at once.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Concurrency int
	// SkipCorrupt: if true, a candidate block that fails to decode is reported
	// and scanning resumes one byte after its magic.
	// If false, the first failure ends the scan.
	SkipCorrupt bool
	// MaxBlockSize rejects headers that declare a larger uncompressed size.
	// Zero means no limit.
	MaxBlockSize uint32
	// OnSkip is called by DecodeAll for every block dropped under SkipCorrupt.
	OnSkip func(*BlockError)
}

// DefaultOptions returns options for default behavior: one worker per CPU, stop on first failure.
func DefaultOptions() *Options {
	return &Options{
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// LenientOptions returns default options that skip corrupt candidate blocks.
func LenientOptions() *Options {
	opts := DefaultOptions()
	opts.SkipCorrupt = true

	return opts
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions()
	}
	if o.Concurrency <= 0 {
		c := *o
		c.Concurrency = runtime.GOMAXPROCS(0)
		return &c
	}

	return o
}
