package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionerrors"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionStore is the persistence interface for auction aggregates. An
// auction document (with its embedded rounds, participants and winners) is
// the atomic unit: Update runs the mutation under exclusive access to that
// one auction so bid, claim and tick processing cannot race.
type AuctionStore interface {
	Create(ctx context.Context, auction model.Auction) error
	Get(ctx context.Context, auctionID string) (model.Auction, error)
	List(ctx context.Context) ([]model.Auction, error)
	// Update loads the auction, applies mutate, and persists the result.
	// If mutate returns an error nothing is written and the error is
	// returned unchanged. Implementations either lock the auction or use
	// compare-and-swap; a CAS miss surfaces as ErrTransient without retry.
	Update(ctx context.Context, auctionID string, mutate func(*model.Auction) error) (model.Auction, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore.
// Each auction has its own lock so ticks and bids on different auctions
// proceed independently.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]*memoryEntry
}

type memoryEntry struct {
	mu      sync.Mutex
	auction model.Auction
}

// NewMemoryRepo creates a new in-memory store instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{auctions: make(map[string]*memoryEntry)}
}

// Create inserts a new auction; it fails if the id is already present.
func (r *MemoryRepo) Create(_ context.Context, auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("create auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionExists)
	}
	r.auctions[auction.AuctionID] = &memoryEntry{auction: auction.Clone()}
	return nil
}

// Get returns a deep copy of one auction.
func (r *MemoryRepo) Get(_ context.Context, auctionID string) (model.Auction, error) {
	entry, err := r.entry(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.auction.Clone(), nil
}

// List returns deep copies of every stored auction in unspecified order.
func (r *MemoryRepo) List(_ context.Context) ([]model.Auction, error) {
	r.mu.RLock()
	entries := make([]*memoryEntry, 0, len(r.auctions))
	for _, e := range r.auctions {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	out := make([]model.Auction, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, e.auction.Clone())
		e.mu.Unlock()
	}
	return out, nil
}

// Update applies mutate to a copy of the auction under its lock and commits
// the copy only if mutate succeeds.
func (r *MemoryRepo) Update(_ context.Context, auctionID string, mutate func(*model.Auction) error) (model.Auction, error) {
	entry, err := r.entry(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	working := entry.auction.Clone()
	if err := mutate(&working); err != nil {
		return model.Auction{}, err
	}
	working.Version++
	entry.auction = working
	return working.Clone(), nil
}

func (r *MemoryRepo) entry(auctionID string) (*memoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return entry, nil
}
