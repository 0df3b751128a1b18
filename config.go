package swifft

import (
	"encoding/json"
	"log"
	"os"

	"github.com/pkg/errors"
)

// Options configures the batched driver. There is no secret-key
// configuration here — SWIFFT has none to carry.
type Options struct {
	// BlocksParallelizationThreshold is the minimum nblocks above which a
	// batched call is permitted to dispatch across worker goroutines.
	BlocksParallelizationThreshold int `json:"blocks_parallelization_threshold"`
	// DisableParallel forces every batched call to run sequentially,
	// regardless of nblocks. Useful for reproducing a trace deterministically.
	DisableParallel bool `json:"disable_parallel"`
}

// DefaultOptions returns the Options a caller gets if they pass none: the
// default parallelization threshold, parallel execution enabled.
func DefaultOptions() Options {
	return Options{BlocksParallelizationThreshold: DefaultBlocksParallelizationThreshold}
}

// Validate reports a malformed Options value. A negative threshold has no
// sensible interpretation.
func (o Options) Validate() error {
	if o.BlocksParallelizationThreshold < 0 {
		return errors.Errorf("blocks_parallelization_threshold must be >= 0, got %d", o.BlocksParallelizationThreshold)
	}
	return nil
}

// LoadOptions reads Options from a JSON file on disk. Fields absent from the
// file keep their DefaultOptions values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	f, err := os.Open(path)
	if err != nil {
		return opts, errors.Wrap(err, "open options file")
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&opts); err != nil {
		return opts, errors.Wrap(err, "decode options file")
	}

	if opts.BlocksParallelizationThreshold == 0 {
		log.Printf("swifft: %s: blocks_parallelization_threshold not set, falling back to %d", path, DefaultBlocksParallelizationThreshold)
		opts.BlocksParallelizationThreshold = DefaultBlocksParallelizationThreshold
	}

	if err := opts.Validate(); err != nil {
		return opts, errors.Wrap(err, "validate options")
	}

	return opts, nil
}
