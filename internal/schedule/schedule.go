package schedule

import (
	"fmt"
	"time"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionerrors"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/clock"
	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
)

// DescriptorSource supplies the externally-configured set of auctions that
// should exist at a given moment. The coordinator reconciles stored state
// against this on every tick.
type DescriptorSource interface {
	ListAuctionDescriptors(now time.Time) ([]model.AuctionDescriptor, error)
}

// HourlySource derives today's descriptors from static configuration: one
// auction per configured hour slot, all sharing the same fee, prize and
// participant threshold.
type HourlySource struct {
	slots           []int
	entryFee        int64
	prizeValue      int64
	minParticipants int
	roundCount      int
}

// NewHourlySource builds a source for the given hour slots (0-23).
func NewHourlySource(slots []int, entryFee, prizeValue int64, minParticipants, roundCount int) *HourlySource {
	return &HourlySource{
		slots:           append([]int(nil), slots...),
		entryFee:        entryFee,
		prizeValue:      prizeValue,
		minParticipants: minParticipants,
		roundCount:      roundCount,
	}
}

func (s *HourlySource) ListAuctionDescriptors(now time.Time) ([]model.AuctionDescriptor, error) {
	date := clock.DateOf(now)
	descriptors := make([]model.AuctionDescriptor, 0, len(s.slots))
	for _, hour := range s.slots {
		descriptors = append(descriptors, model.AuctionDescriptor{
			AuctionID:       SlotAuctionID(date, hour),
			Date:            date,
			SlotHour:        hour,
			MinParticipants: s.minParticipants,
			EntryFee:        s.entryFee,
			PrizeValue:      s.prizeValue,
			RoundCount:      s.roundCount,
		})
	}
	return descriptors, nil
}

// SlotAuctionID is the canonical auction id for a (date, hour) slot.
func SlotAuctionID(date string, hour int) string {
	return fmt.Sprintf("dream60-%s-%02d", date, hour)
}

// Static is a fixed descriptor list, useful for tests and one-off auctions.
type Static []model.AuctionDescriptor

func (s Static) ListAuctionDescriptors(time.Time) ([]model.AuctionDescriptor, error) {
	return append([]model.AuctionDescriptor(nil), s...), nil
}

// Validate rejects descriptors that cannot seed a well-formed auction.
func Validate(d model.AuctionDescriptor) error {
	switch {
	case d.AuctionID == "":
		return fmt.Errorf("descriptor missing auction id: %w", auctionerrors.ErrValidation)
	case d.Date == "":
		return fmt.Errorf("descriptor %s missing date: %w", d.AuctionID, auctionerrors.ErrValidation)
	case d.SlotHour < 0 || d.SlotHour > 23:
		return fmt.Errorf("descriptor %s has slot hour %d: %w", d.AuctionID, d.SlotHour, auctionerrors.ErrValidation)
	case d.RoundCount < 1:
		return fmt.Errorf("descriptor %s has round count %d: %w", d.AuctionID, d.RoundCount, auctionerrors.ErrValidation)
	case d.MinParticipants < 0 || d.EntryFee < 0 || d.PrizeValue < 0:
		return fmt.Errorf("descriptor %s has negative amounts: %w", d.AuctionID, auctionerrors.ErrValidation)
	}
	if _, err := time.Parse(clock.DateLayout, d.Date); err != nil {
		return fmt.Errorf("descriptor %s has malformed date %q: %w", d.AuctionID, d.Date, auctionerrors.ErrValidation)
	}
	return nil
}
