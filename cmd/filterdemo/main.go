// Command filterdemo prints the integers accepted by a predicate, one per line.
//
//	filterdemo -values 6,9,0,1,2,3 -predicate gt:2
//	filterdemo -values 6,9,0,1,2,3 -predicate gt:2 -output count
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	filteriterator "github.com/laplasian/filteriterator-tttask"
	"github.com/laplasian/filteriterator-tttask/internal/logging"
	"github.com/laplasian/filteriterator-tttask/iterators"
	"github.com/laplasian/filteriterator-tttask/positions"
	"github.com/laplasian/filteriterator-tttask/predicates"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Getenv, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, getenv, stderr)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	ctx = logging.WithFields(ctx, zap.String("predicate", cfg.Predicate))
	logger, ctx = logging.LoggerFromContext(ctx, logging.WithContext(ctx, logger))

	predicate, err := parsePredicate(cfg.Predicate)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	return filter(ctx, cfg.Values, predicate, cfg.Output, stdout)
}

func filter(ctx context.Context, values []int, predicate filteriterator.Predicate[int], output string, stdout io.Writer) error {
	logger := logging.Logger(ctx)
	counter := &predicates.Counter[int]{Predicate: predicates.Logged(logger, predicate)}

	first, last := positions.SliceBounds(values)
	r := filteriterator.New[positions.Slice[int], int](first, last, counter)
	it := iterators.FromPositions(r.Begin(), r.End())

	accepted, err := write(it, output, stdout)
	if err != nil {
		return err
	}

	logger.Info("filtered",
		zap.String("output", output),
		zap.Int("values", len(values)),
		zap.Int("accepted", accepted),
		zap.Int("predicate calls", counter.Count()))
	return nil
}

// write prints the values of the iterator in the given output mode,
// and returns how many accepted values it consumed.
func write(it iterators.Iterator[int], output string, stdout io.Writer) (int, error) {
	switch output {
	case outputList:
		vs, err := iterators.Collect(it)
		if err != nil {
			return 0, err
		}
		_, err = fmt.Fprintln(stdout, vs)
		return len(vs), err

	case outputCount:
		n, err := iterators.Count(it)
		if err != nil {
			return 0, err
		}
		_, err = fmt.Fprintln(stdout, n)
		return n, err

	case outputFirst:
		v, found, err := iterators.First(it)
		if err != nil || !found {
			return 0, err
		}
		_, err = fmt.Fprintln(stdout, v)
		return 1, err

	default:
		var n int
		err := iterators.ForEach(it, func(v int) error {
			n++
			_, err := fmt.Fprintln(stdout, v)
			return err
		})
		return n, err
	}
}
