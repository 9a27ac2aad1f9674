package processor

import (
	"context"
	"time"

	"insights-server/internal/scope"
	"insights-server/internal/store"
)

// FollowUpBucket reports how one follow-up cadence slot performed.
// Field names match the timing chart's series keys.
type FollowUpBucket struct {
	Day          int     `json:"day"`
	Attempts     int     `json:"attempts"`
	Responses    int     `json:"responses"`
	ResponseRate float64 `json:"responseRate"`
}

// followUpWindows maps a bucket day to the inclusive day-offset range
// that counts as an attempt at that cadence slot. Messages falling
// between ranges (day 5, day 10) belong to no bucket.
var followUpWindows = []struct {
	day    int
	lo, hi float64
}{
	{3, 2, 4},
	{7, 6, 8},
	{14, 13, 15},
}

// responseWindow is how long after a follow-up an inbound message
// still counts as a response to it.
const responseWindow = 72 * time.Hour

// GetFollowUpTiming measures which follow-up cadence slots actually get
// replies, bucketed around day 3, 7 and 14 after first contact.
func (p *AnalyticsProcessor) GetFollowUpTiming(ctx context.Context, sc scope.Scope) ([]FollowUpBucket, error) {
	timeline, err := p.store.GetLeadMessageTimeline(ctx, sc)
	if err != nil {
		p.logger.Error(ctx, "failed to get lead message timeline", err)
		return nil, err
	}
	return bucketFollowUps(timeline), nil
}

// bucketFollowUps walks a timeline ordered by lead then time. The first
// outbound message per lead anchors day zero; later outbound messages
// are attempts, and an attempt scores a response when an inbound
// message lands within the response window after it.
func bucketFollowUps(timeline []store.LeadMessage) []FollowUpBucket {
	buckets := make([]FollowUpBucket, len(followUpWindows))
	for i, w := range followUpWindows {
		buckets[i] = FollowUpBucket{Day: w.day}
	}
	index := make(map[int]*FollowUpBucket, len(buckets))
	for i := range buckets {
		index[buckets[i].Day] = &buckets[i]
	}

	byLead := make(map[string][]store.LeadMessage)
	order := make([]string, 0)
	for _, msg := range timeline {
		key := msg.LeadID.String()
		if _, seen := byLead[key]; !seen {
			order = append(order, key)
		}
		byLead[key] = append(byLead[key], msg)
	}

	for _, key := range order {
		msgs := byLead[key]

		var firstOutbound *time.Time
		for i := range msgs {
			if msgs[i].Direction == store.DirectionOutbound {
				firstOutbound = &msgs[i].CreatedAt
				break
			}
		}
		if firstOutbound == nil {
			continue
		}

		for i, msg := range msgs {
			if msg.Direction != store.DirectionOutbound || msg.CreatedAt.Equal(*firstOutbound) {
				continue
			}
			day := bucketForOffset(msg.CreatedAt.Sub(*firstOutbound).Hours() / 24)
			if day == 0 {
				continue
			}
			bucket := index[day]
			bucket.Attempts++
			if respondedWithin(msgs[i+1:], msg.CreatedAt) {
				bucket.Responses++
			}
		}
	}

	for i := range buckets {
		if buckets[i].Attempts > 0 {
			buckets[i].ResponseRate = round1(float64(buckets[i].Responses) / float64(buckets[i].Attempts) * 100)
		}
	}
	return buckets
}

func bucketForOffset(days float64) int {
	for _, w := range followUpWindows {
		if days >= w.lo && days <= w.hi {
			return w.day
		}
	}
	return 0
}

func respondedWithin(later []store.LeadMessage, sentAt time.Time) bool {
	deadline := sentAt.Add(responseWindow)
	for _, msg := range later {
		if msg.CreatedAt.After(deadline) {
			return false
		}
		if msg.Direction == store.DirectionInbound {
			return true
		}
	}
	return false
}
