package history

import (
	"sync/atomic"
	"time"

	model "github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/models"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/utils"
)

// ClaimOutcome describes how one rank's claim resolved.
type ClaimOutcome string

const (
	OutcomeClaimed   ClaimOutcome = "CLAIMED"
	OutcomeExpired   ClaimOutcome = "EXPIRED"
	OutcomeCancelled ClaimOutcome = "CANCELLED"
)

// Sink receives fire-and-forget notifications about auction state changes.
// Implementations must not block; the core never inspects a result and a
// failing sink must never stall a state transition.
type Sink interface {
	OnStatusChanged(auctionID string, status model.AuctionStatus)
	OnWinnersDetermined(auctionID string, winners []model.Winner)
	OnClaim(auctionID string, rank int, outcome ClaimOutcome)
	OnRefundDue(auctionID, participantID string)
}

// LogSink records every notification as a structured log line.
type LogSink struct{}

func (LogSink) OnStatusChanged(auctionID string, status model.AuctionStatus) {
	utils.Info("auction status changed", map[string]any{
		"auction_id": auctionID,
		"status":     string(status),
	})
}

func (LogSink) OnWinnersDetermined(auctionID string, winners []model.Winner) {
	utils.Info("auction winners determined", map[string]any{
		"auction_id": auctionID,
		"count":      len(winners),
	})
}

func (LogSink) OnClaim(auctionID string, rank int, outcome ClaimOutcome) {
	utils.Info("prize claim resolved", map[string]any{
		"auction_id": auctionID,
		"rank":       rank,
		"outcome":    string(outcome),
	})
}

func (LogSink) OnRefundDue(auctionID, participantID string) {
	utils.Info("entry fee refund due", map[string]any{
		"auction_id":     auctionID,
		"participant_id": participantID,
	})
}

// EventKind discriminates Event payloads.
type EventKind string

const (
	EventStatusChanged     EventKind = "STATUS_CHANGED"
	EventWinnersDetermined EventKind = "WINNERS_DETERMINED"
	EventClaim             EventKind = "CLAIM"
	EventRefundDue         EventKind = "REFUND_DUE"
)

// Event is one outbound notification, for hosts that drain a queue instead
// of handling callbacks inline.
type Event struct {
	Kind          EventKind
	AuctionID     string
	Status        model.AuctionStatus
	Winners       []model.Winner
	Rank          int
	Outcome       ClaimOutcome
	ParticipantID string
	At            time.Time
}

// ChannelSink buffers events on a channel for the host to drain. When the
// buffer is full events are dropped and counted rather than blocking the
// tick or request that produced them.
type ChannelSink struct {
	ch      chan Event
	dropped atomic.Uint64
}

// NewChannelSink creates a sink with the given buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{ch: make(chan Event, buffer)}
}

// Events is the host-facing side of the queue.
func (s *ChannelSink) Events() <-chan Event {
	return s.ch
}

// Dropped reports how many events were discarded on a full buffer.
func (s *ChannelSink) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *ChannelSink) send(e Event) {
	e.At = time.Now().UTC()
	select {
	case s.ch <- e:
	default:
		s.dropped.Add(1)
	}
}

func (s *ChannelSink) OnStatusChanged(auctionID string, status model.AuctionStatus) {
	s.send(Event{Kind: EventStatusChanged, AuctionID: auctionID, Status: status})
}

func (s *ChannelSink) OnWinnersDetermined(auctionID string, winners []model.Winner) {
	s.send(Event{Kind: EventWinnersDetermined, AuctionID: auctionID, Winners: winners})
}

func (s *ChannelSink) OnClaim(auctionID string, rank int, outcome ClaimOutcome) {
	s.send(Event{Kind: EventClaim, AuctionID: auctionID, Rank: rank, Outcome: outcome})
}

func (s *ChannelSink) OnRefundDue(auctionID, participantID string) {
	s.send(Event{Kind: EventRefundDue, AuctionID: auctionID, ParticipantID: participantID})
}

// Fanout delivers every notification to each member sink in order.
type Fanout []Sink

func (f Fanout) OnStatusChanged(auctionID string, status model.AuctionStatus) {
	for _, s := range f {
		s.OnStatusChanged(auctionID, status)
	}
}

func (f Fanout) OnWinnersDetermined(auctionID string, winners []model.Winner) {
	for _, s := range f {
		s.OnWinnersDetermined(auctionID, winners)
	}
}

func (f Fanout) OnClaim(auctionID string, rank int, outcome ClaimOutcome) {
	for _, s := range f {
		s.OnClaim(auctionID, rank, outcome)
	}
}

func (f Fanout) OnRefundDue(auctionID, participantID string) {
	for _, s := range f {
		s.OnRefundDue(auctionID, participantID)
	}
}
