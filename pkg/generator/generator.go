// Package generator defines the interface for keyless vanity address generation.
// A Generator takes a batch of vanity requests and composes one address per
// request; the address format is chosen by Network.
package generator

import (
	"context"
)

// Network represents the SS58 network an address is built for.
type Network int

const (
	Polkadot Network = iota // Polkadot relay chain (SS58 prefix 0, Blake2b-512 checksum, Base58)
)

// String returns the network name.
func (n Network) String() string {
	switch n {
	case Polkadot:
		return "Polkadot"
	default:
		return "Unknown"
	}
}

// Request is one vanity request: the text to show and the character
// used to pad the rest of the address.
type Request struct {
	Text string // Desired vanity text, at most 20 characters
	Fill rune   // Filler character
}

// Config holds the configuration for a generation run.
type Config struct {
	Network  Network   // Target network
	Requests []Request // Requests to compose, in order
	Workers  int       // Number of concurrent workers
}

// Result is the outcome of one Request.
type Result struct {
	Network Network // Network the address belongs to
	Index   int     // Position of the request in Config.Requests
	Request Request // The request this result answers
	Address string  // Base58 address, empty if Err is set
	Key     []byte  // Raw 32 key bytes; these are not a real public key
	Err     error   // Why the request could not be composed
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // Requests processed so far
	Failed      uint64  // Requests rejected (e.g. text too long)
	HashRate    float64 // Requests per second
	ElapsedSecs float64 // Time elapsed since start
}

// Generator defines the contract for address generation backends.
type Generator interface {
	// Start composes every request in config. It returns a channel that
	// receives one Result per request and is closed when all are done.
	// The run can be cancelled via the context.
	Start(ctx context.Context, config *Config) (<-chan Result, error)

	// Stats returns the current performance statistics.
	// This method is safe to call concurrently from any goroutine.
	Stats() Stats

	// Name returns the implementation name (e.g., "CPU").
	Name() string
}
