package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	filteriterator "github.com/laplasian/filteriterator-tttask"
	"github.com/laplasian/filteriterator-tttask/internal/logging"
	"github.com/laplasian/filteriterator-tttask/predicates"
)

const (
	ErrUnknownPredicate filteriterator.Error = "unknown predicate"
	ErrInvalidValue     filteriterator.Error = "invalid value"
	ErrUnknownOutput    filteriterator.Error = "unknown output"
)

const (
	outputLines = "lines"
	outputList  = "list"
	outputCount = "count"
	outputFirst = "first"
)

const (
	envValues    = "FILTERDEMO_VALUES"
	envPredicate = "FILTERDEMO_PREDICATE"
	envLogLevel  = "FILTERDEMO_LOG_LEVEL"
	envLogFormat = "FILTERDEMO_LOG_FORMAT"
	envOutput    = "FILTERDEMO_OUTPUT"
)

type Config struct {
	Values    []int
	Predicate string
	Output    string
	Log       logging.Config
}

// parseConfig reads the flags, and falls back to the environment for the ones not given.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (Config, error) {
	withDefault := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	var (
		cfg    Config
		values string
		fs     = flag.NewFlagSet("filterdemo", flag.ContinueOnError)
	)
	fs.SetOutput(stderr)
	fs.StringVar(&values, "values", withDefault(envValues, ""), "comma separated integers to filter")
	fs.StringVar(&cfg.Predicate, "predicate", withDefault(envPredicate, "even"), "even, odd, gt:N, lt:N, between:A:B or div:N")
	fs.StringVar(&cfg.Output, "output", withDefault(envOutput, outputLines), "lines, list, count or first")
	fs.StringVar(&cfg.Log.Level, "log-level", withDefault(envLogLevel, "info"), "debug, info, warn or error")
	fs.StringVar(&cfg.Log.Format, "log-format", withDefault(envLogFormat, logging.FormatAuto), "auto, json or console")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	vs, err := parseValues(values)
	if err != nil {
		return Config{}, err
	}
	cfg.Values = vs

	switch cfg.Output {
	case outputLines, outputList, outputCount, outputFirst:
	default:
		return Config{}, fmt.Errorf("%q: %w", cfg.Output, ErrUnknownOutput)
	}
	return cfg, nil
}

func parseValues(raw string) ([]int, error) {
	var vs []int
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", field, ErrInvalidValue)
		}
		vs = append(vs, n)
	}
	return vs, nil
}

// parsePredicate turns an expression like gt:3 or between:1:5 into a predicate.
func parsePredicate(expr string) (filteriterator.Predicate[int], error) {
	name, rawArgs, _ := strings.Cut(expr, ":")

	var args []int
	if rawArgs != "" {
		for _, raw := range strings.Split(rawArgs, ":") {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("predicate %q argument %q: %w", expr, raw, ErrInvalidValue)
			}
			args = append(args, n)
		}
	}

	arity := map[string]int{"even": 0, "odd": 0, "gt": 1, "lt": 1, "div": 1, "between": 2}
	want, ok := arity[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", expr, ErrUnknownPredicate)
	}
	if len(args) != want {
		return nil, fmt.Errorf("predicate %q takes %d arguments: %w", expr, want, ErrInvalidValue)
	}

	switch name {
	case "even":
		return predicates.Even[int](), nil
	case "odd":
		return predicates.Odd[int](), nil
	case "gt":
		return predicates.GreaterThan(args[0]), nil
	case "lt":
		return predicates.LessThan(args[0]), nil
	case "div":
		return predicates.DivisibleBy(args[0]), nil
	default:
		return predicates.Between(args[0], args[1]), nil
	}
}
