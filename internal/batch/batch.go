// Package batch evaluates many prompts against one exercise concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/promptlab/internal/evaluator"
)

// DefaultJobs is the default number of prompts evaluated at once.
const DefaultJobs = 4

// MaxLine bounds a single prompt line read from a stream.
const MaxLine = 1 << 20

// NewScanner returns a line scanner over r that accepts prompts up to
// MaxLine bytes.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLine)
	return sc
}

// ReadPrompts returns the non-blank lines of r, one prompt per line.
// Trailing carriage returns are dropped; other whitespace is kept so the
// prompt is evaluated exactly as written.
func ReadPrompts(r io.Reader) ([]string, error) {
	var prompts []string
	sc := NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		prompts = append(prompts, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read prompts: %w", err)
	}
	return prompts, nil
}

// Evaluate runs the evaluator over prompts with at most jobs running at
// once. Results are returned in input order. It stops early if ctx is
// cancelled.
func Evaluate(ctx context.Context, exerciseID string, prompts []string, jobs int) ([]evaluator.Feedback, error) {
	if jobs <= 0 {
		jobs = DefaultJobs
	}

	results := make([]evaluator.Feedback, len(prompts))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)

	for i, p := range prompts {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = evaluator.Evaluate(p, exerciseID)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate batch: %w", err)
	}
	return results, nil
}
