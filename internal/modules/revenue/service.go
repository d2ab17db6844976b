package revenue

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"hotelops/internal/domain"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

var ErrValidation = errors.New("validation error")

type Service struct {
	store    Store
	cache    Cache
	cacheTTL time.Duration
}

func NewService(store Store, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{store: store, cache: cache, cacheTTL: cacheTTL}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func bucketKey(t time.Time, g Granularity) string {
	if g == GranularityMonth {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

// GetStats sums committed invoice totals per day or month bucket. With dense
// set, every bucket between from and to appears in chronological order even
// when its total is zero; otherwise only buckets with activity are returned.
func (s *Service) GetStats(ctx context.Context, hotelID int64, from, to time.Time, g Granularity, dense bool) (*Stats, error) {
	if !from.Before(to) {
		return nil, ErrValidation
	}
	if g != GranularityDay && g != GranularityMonth {
		return nil, ErrValidation
	}

	cacheKey := fmt.Sprintf("revenue:stats:%d:%d:%d:%s:%t", hotelID, from.Unix(), to.Unix(), g, dense)
	if s.cache != nil {
		var cached Stats
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Msg("revenue cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	invoices, err := s.store.ListInvoiceTotals(ctx, hotelID, from, to)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	counts := make(map[string]int)
	stats := &Stats{}
	for _, inv := range invoices {
		key := bucketKey(inv.CreatedAt, g)
		totals[key] += inv.TotalAmount
		counts[key]++
		stats.Total += inv.TotalAmount
		stats.Count++
	}
	stats.Total = round2(stats.Total)

	for _, key := range bucketRange(from, to, g, counts, dense) {
		stats.Points = append(stats.Points, Point{
			Date:  key,
			Total: round2(totals[key]),
			Count: counts[key],
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, stats, s.cacheTTL); err != nil {
			log.Warn().Err(err).Msg("revenue cache write failed")
		}
	}
	return stats, nil
}

// bucketRange returns bucket keys in chronological order. Dense mode walks
// the calendar from from to to (inclusive of the bucket containing to-1ns);
// sparse mode keeps only buckets with invoice activity, even when that
// activity sums to zero.
func bucketRange(from, to time.Time, g Granularity, counts map[string]int, dense bool) []string {
	var keys []string
	last := to.Add(-time.Nanosecond)
	if g == GranularityMonth {
		cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)
		for !cur.After(end) {
			key := cur.Format("2006-01")
			if dense || counts[key] > 0 {
				keys = append(keys, key)
			}
			cur = cur.AddDate(0, 1, 0)
		}
		return keys
	}

	cur := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC)
	for !cur.After(end) {
		key := cur.Format("2006-01-02")
		if dense || counts[key] > 0 {
			keys = append(keys, key)
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return keys
}

// GetBreakdown partitions line revenue by source type: room charges versus
// food & beverage (order lines). One invoice can contribute to both sides.
func (s *Service) GetBreakdown(ctx context.Context, hotelID int64, from, to time.Time) (*Breakdown, error) {
	if !from.Before(to) {
		return nil, ErrValidation
	}
	sums, err := s.store.SumLinesBySource(ctx, hotelID, from, to)
	if err != nil {
		return nil, err
	}
	return &Breakdown{
		RoomTotal:  round2(sums[domain.LineSourceRoom]),
		FnbTotal:   round2(sums[domain.LineSourceOrder]),
		OtherTotal: round2(sums[domain.LineSourceOther]),
	}, nil
}

func (s *Service) GetDetails(ctx context.Context, hotelID int64, from, to time.Time, source domain.InvoiceLineSourceType) ([]LineDetail, error) {
	if !from.Before(to) || !source.Valid() {
		return nil, ErrValidation
	}
	return s.store.ListLinesBySource(ctx, hotelID, from, to, source)
}
