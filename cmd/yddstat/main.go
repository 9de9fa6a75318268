// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command yddstat builds two families of integer subsets from text files,
// combines them with one of the engine's set operations, and reports the
// resulting family's cardinality and the engine's bookkeeping stats.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/racordon/ydd"
)

func main() {
	if err := app().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "yddstat:", err)
		os.Exit(1)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:  "yddstat",
		Usage: "combine two files of integer subsets with a set operation and report stats",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Aliases:  []string{"o"},
				Usage:    "union, intersection, difference, or symdiff",
				Value:    "union",
				Required: false,
			},
		},
		ArgsUsage: "<left-file> <right-file>",
		Action:    run,
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("expected exactly two file arguments", 1)
	}
	opName := c.String("op")

	e, err := ydd.New[int]()
	if err != nil {
		return errors.Wrap(err, "yddstat: creating engine")
	}

	left, err := loadFamily(e, c.Args().Get(0))
	if err != nil {
		return errors.Wrap(err, "yddstat: loading left file")
	}
	right, err := loadFamily(e, c.Args().Get(1))
	if err != nil {
		return errors.Wrap(err, "yddstat: loading right file")
	}

	result, err := combine(opName, left, right)
	if err != nil {
		return err
	}

	fmt.Printf("result size: %d\n", result.Size())
	fmt.Println(e.Stats().String())
	return nil
}

// combine dispatches to the requested set operation, wrapping an unknown op
// name in a user-facing error instead of panicking.
func combine(opName string, left, right ydd.Handle[int]) (ydd.Handle[int], error) {
	switch opName {
	case "union":
		return left.Union(right), nil
	case "intersection":
		return left.Intersection(right), nil
	case "difference":
		return left.Difference(right), nil
	case "symdiff":
		return left.SymmetricDifference(right), nil
	default:
		return ydd.Handle[int]{}, errors.Errorf("yddstat: unknown operation %q (want union, intersection, difference, or symdiff)", opName)
	}
}

// loadFamily reads path as a newline-delimited list of subsets, each a line
// of space-separated integer keys, and returns the Handle for their union.
func loadFamily(e *ydd.Engine[int], path string) (ydd.Handle[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return ydd.Handle[int]{}, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	family := e.MakeTerminal(false)
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		subset, err := parseSubset(e, line)
		if err != nil {
			return ydd.Handle[int]{}, errors.Wrapf(err, "%s:%d", path, lineNum)
		}
		family = family.Union(subset)
	}
	if err := scanner.Err(); err != nil {
		return ydd.Handle[int]{}, errors.Wrapf(err, "reading %s", path)
	}
	return family, nil
}

// parseSubset builds the singleton-family Handle for one space-separated
// line of integer keys. Keys are deduplicated and sorted ascending, then the
// chain is built from the greatest key down, as original_source/ydd/ydd.py's
// make_one does: a node's then-child must
// branch on a strictly greater key, so building from an unsorted or
// duplicate-laden line would silently violate that ordering invariant
// instead of raising an error.
func parseSubset(e *ydd.Engine[int], line string) (ydd.Handle[int], error) {
	fields := strings.Fields(line)
	seen := make(map[int]bool, len(fields))
	keys := make([]int, 0, len(fields))
	for _, field := range fields {
		k, err := strconv.Atoi(field)
		if err != nil {
			return ydd.Handle[int]{}, errors.Wrapf(err, "parsing key %q", field)
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	sort.Ints(keys)

	subset := e.MakeTerminal(true)
	for i := len(keys) - 1; i >= 0; i-- {
		subset = e.MakeNode(keys[i], subset, e.MakeTerminal(false))
	}
	return subset, nil
}
