package services

import (
	"encoding/base32"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/google/uuid"
)

const (
	orderNumberPrefix    = "ORD-"
	trackingNumberPrefix = "TRK-"
	suffixLength         = 8

	// maxRegenerations bounds how often a suffix is redrawn after a possible
	// bloom hit. The store's unique indexes remain the final guard.
	maxRegenerations = 8

	defaultExpectedIdentifiers = 1_000_000
	defaultFalsePositiveRate   = 0.001
)

var suffixEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// IdentifierGenerator issues ORD-XXXXXXXX order numbers and TRK-XXXXXXXX
// tracking numbers. Each suffix is the first 8 base32 characters of a random
// UUID (40 random bits over A-Z2-7). A bloom filter remembers what this
// process has issued and a possible repeat is redrawn before it reaches the
// store.
type IdentifierGenerator struct {
	mu     sync.Mutex
	issued *bloom.BloomFilter
	newID  func() uuid.UUID
}

// NewIdentifierGenerator sizes the filter for about a million identifiers at a
// 0.1% false positive rate.
func NewIdentifierGenerator() *IdentifierGenerator {
	return newIdentifierGenerator(uuid.New, defaultExpectedIdentifiers)
}

func newIdentifierGenerator(newID func() uuid.UUID, expected uint) *IdentifierGenerator {
	return &IdentifierGenerator{
		issued: bloom.NewWithEstimates(expected, defaultFalsePositiveRate),
		newID:  newID,
	}
}

// NewOrderNumber returns a fresh ORD- identifier.
func (g *IdentifierGenerator) NewOrderNumber() string {
	return g.next(orderNumberPrefix)
}

// NewTrackingNumber returns a fresh TRK- identifier.
func (g *IdentifierGenerator) NewTrackingNumber() string {
	return g.next(trackingNumberPrefix)
}

// Remember marks identifiers that were issued elsewhere, for example loaded
// from the store, so they are not handed out again.
func (g *IdentifierGenerator) Remember(identifiers ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, id := range identifiers {
		g.issued.AddString(id)
	}
}

func (g *IdentifierGenerator) next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var candidate string
	for range maxRegenerations {
		candidate = prefix + g.suffix()
		if !g.issued.TestOrAddString(candidate) {
			return candidate
		}
	}
	return candidate
}

func (g *IdentifierGenerator) suffix() string {
	id := g.newID()
	return suffixEncoding.EncodeToString(id[:])[:suffixLength]
}
