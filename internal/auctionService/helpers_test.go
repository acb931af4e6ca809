package auction

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/clock"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/history"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/repository"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/schedule"
)

var istZone = clock.FixedOffset("IST", 330)

const (
	testDate     = "2026-08-28"
	testSlotHour = 15
	testAuction  = "dream60-2026-08-28-15"
)

// slotTime returns a moment within (or around) the test slot hour; minutes
// outside 0-59 roll into neighboring hours.
func slotTime(minute, second int) time.Time {
	return time.Date(2026, 8, 28, testSlotHour, minute, second, 0, istZone)
}

func testDescriptor() model.AuctionDescriptor {
	return model.AuctionDescriptor{
		AuctionID:       testAuction,
		Date:            testDate,
		SlotHour:        testSlotHour,
		MinParticipants: 2,
		EntryFee:        50,
		PrizeValue:      10000,
		RoundCount:      4,
	}
}

type claimRecord struct {
	rank    int
	outcome history.ClaimOutcome
}

// recordingSink captures every history notification for assertions.
type recordingSink struct {
	mu       sync.Mutex
	statuses []model.AuctionStatus
	winners  [][]model.Winner
	claims   []claimRecord
	refunds  []string
}

func (r *recordingSink) OnStatusChanged(_ string, status model.AuctionStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
}

func (r *recordingSink) OnWinnersDetermined(_ string, winners []model.Winner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.winners = append(r.winners, winners)
}

func (r *recordingSink) OnClaim(_ string, rank int, outcome history.ClaimOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claims = append(r.claims, claimRecord{rank: rank, outcome: outcome})
}

func (r *recordingSink) OnRefundDue(_, participantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refunds = append(r.refunds, participantID)
}

func (r *recordingSink) lastStatus() model.AuctionStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statuses) == 0 {
		return ""
	}
	return r.statuses[len(r.statuses)-1]
}

func (r *recordingSink) refundCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.refunds)
}

// newTestService builds a service over the in-memory store with a fake clock
// parked one hour before the test slot.
func newTestService(t *testing.T, descriptors ...model.AuctionDescriptor) (*Service, *repository.MemoryRepo, *clock.Fake, *recordingSink) {
	t.Helper()

	store := repository.NewMemoryRepo()
	clk := clock.NewFake(slotTime(-60, 0))
	sink := &recordingSink{}
	svc := NewService(store, schedule.Static(descriptors), clk, sink)
	return svc, store, clk, sink
}

// newFakeBeforeSlot parks a fake clock one hour before the test slot.
func newFakeBeforeSlot() *clock.Fake {
	return clock.NewFake(slotTime(-60, 0))
}

// seedAuction creates the test auction directly in the store.
func seedAuction(t *testing.T, store *repository.MemoryRepo, d model.AuctionDescriptor) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), newAuction(d)))
}

// joinUsers enters n users and returns their participant ids in join order.
func joinUsers(t *testing.T, svc *Service, auctionID string, n int) []string {
	t.Helper()

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		user := string(rune('A' + i))
		p, err := svc.JoinAuction(context.Background(), auctionID, "user-"+user, "player"+user)
		require.NoError(t, err)
		ids = append(ids, p.ParticipantID)
	}
	return ids
}

func getAuction(t *testing.T, store *repository.MemoryRepo, auctionID string) model.Auction {
	t.Helper()
	a, err := store.Get(context.Background(), auctionID)
	require.NoError(t, err)
	return a
}

// placeBid is a thin wrapper failing the test on error.
func placeBid(t *testing.T, svc *Service, auctionID, participantID string, amount int64) model.Bid {
	t.Helper()
	bid, err := svc.PlaceBid(context.Background(), auctionID, participantID, amount)
	require.NoError(t, err)
	return bid
}

// tickAt moves the clock and runs one tick.
func tickAt(svc *Service, clk *clock.Fake, at time.Time) {
	clk.Set(at)
	svc.Tick(context.Background())
}
