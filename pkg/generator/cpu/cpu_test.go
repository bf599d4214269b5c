package cpu

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/ss58vanity/pkg/generator"
	"github.com/Amr-9/ss58vanity/pkg/generator/polkadot"
)

func collect(t *testing.T, ch <-chan generator.Result) []generator.Result {
	t.Helper()
	var results []generator.Result
	for r := range ch {
		results = append(results, r)
	}
	return results
}

func TestCPUGeneratorBatch(t *testing.T) {
	requests := []generator.Request{
		{Text: "HelloWorld", Fill: '1'},
		{Text: strings.Repeat("x", polkadot.MaxVanity+1), Fill: 'x'},
		{Text: "", Fill: 'x'},
		{Text: "Polkadot", Fill: 'z'},
	}

	gen := NewCPUGenerator(3)
	ch, err := gen.Start(context.Background(), &generator.Config{
		Network:  generator.Polkadot,
		Requests: requests,
	})
	require.NoError(t, err)

	results := collect(t, ch)
	require.Len(t, results, len(requests))

	byIndex := make(map[int]generator.Result)
	for _, r := range results {
		byIndex[r.Index] = r
		assert.Equal(t, requests[r.Index], r.Request)
		assert.Equal(t, generator.Polkadot, r.Network)
	}

	assert.Equal(t, "1HeLLoWorLd1111111111111111111111111111111112kn", byIndex[0].Address)
	assert.Len(t, byIndex[0].Key, polkadot.KeyLen)

	assert.True(t, errors.Is(byIndex[1].Err, polkadot.ErrInputTooLong))
	assert.Empty(t, byIndex[1].Address)

	assert.Equal(t, "1xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxtv4", byIndex[2].Address)
	assert.Equal(t, "1PoLkadotzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzwa8", byIndex[3].Address)

	for _, i := range []int{0, 2, 3} {
		_, err := polkadot.Verify(byIndex[i].Address)
		assert.NoError(t, err)
	}

	stats := gen.Stats()
	assert.Equal(t, uint64(len(requests)), stats.Attempts)
	assert.Equal(t, uint64(1), stats.Failed)
}

func TestCPUGeneratorEmptyBatch(t *testing.T) {
	gen := NewCPUGenerator(0)
	ch, err := gen.Start(context.Background(), &generator.Config{Network: generator.Polkadot})
	require.NoError(t, err)
	assert.Empty(t, collect(t, ch))
}

func TestCPUGeneratorCancelled(t *testing.T) {
	requests := make([]generator.Request, 1000)
	for i := range requests {
		requests[i] = generator.Request{Text: "Cancel", Fill: 'x'}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := NewCPUGenerator(2)
	ch, err := gen.Start(ctx, &generator.Config{
		Network:  generator.Polkadot,
		Requests: requests,
	})
	require.NoError(t, err)

	// the channel must still close after cancellation
	assert.LessOrEqual(t, len(collect(t, ch)), len(requests))
}

func TestCPUGeneratorUnsupportedNetwork(t *testing.T) {
	gen := NewCPUGenerator(1)
	_, err := gen.Start(context.Background(), &generator.Config{Network: generator.Network(99)})
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))
}

func TestNewCPUGeneratorDefaults(t *testing.T) {
	assert.Greater(t, NewCPUGenerator(0).workers, 0)
	assert.Equal(t, 4, NewCPUGenerator(4).workers)
	assert.Equal(t, "CPU", NewCPUGenerator(1).Name())
}
