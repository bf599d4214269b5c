package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/Amr-9/ss58vanity/pkg/generator"
)

// readRequests reads one vanity text per line. A line may carry its own
// fill character after a tab; otherwise fill is used. Blank lines and lines
// starting with # are skipped.
func readRequests(r io.Reader, fill rune) ([]generator.Request, error) {
	var requests []generator.Request

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		req := generator.Request{Text: line, Fill: fill}
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			req.Text = line[:i]
			if f := []rune(line[i+1:]); len(f) > 0 {
				req.Fill = f[0]
			}
		}
		requests = append(requests, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading batch")
	}
	return requests, nil
}

// runBatch composes every request and writes one "text<TAB>address" line
// per request, in input order. Rejected requests are written with the
// error in place of the address.
func runBatch(ctx context.Context, gen generator.Generator, requests []generator.Request, workers int, w io.Writer) (generator.Stats, error) {
	resultChan, err := gen.Start(ctx, &generator.Config{
		Network:  generator.Polkadot,
		Requests: requests,
		Workers:  workers,
	})
	if err != nil {
		return generator.Stats{}, err
	}

	results := make([]generator.Result, 0, len(requests))
	for result := range resultChan {
		results = append(results, result)
	}
	if err := ctx.Err(); err != nil {
		return gen.Stats(), err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	bw := bufio.NewWriter(w)
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(bw, "%s\terror: %v\n", result.Request.Text, result.Err)
			continue
		}
		fmt.Fprintf(bw, "%s\t%s\n", result.Request.Text, result.Address)
	}
	return gen.Stats(), bw.Flush()
}
