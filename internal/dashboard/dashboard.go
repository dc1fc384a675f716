// Package dashboard aggregates the four record collections into the home
// page: per-collection counts, payment totals and a unified activity feed.
// All reads are read-only.
package dashboard

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zarbiti/zarbiti-backend/internal/format"
	"github.com/zarbiti/zarbiti-backend/internal/modules/orders"
	"github.com/zarbiti/zarbiti-backend/internal/modules/parcels"
	"github.com/zarbiti/zarbiti-backend/internal/modules/payments"
	"github.com/zarbiti/zarbiti-backend/internal/modules/production"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

const (
	feedPerCollection = 5
	feedLimit         = 6
	labelSeparator    = " — "
)

type Counts struct {
	Orders     int `json:"orders"`
	Production int `json:"production"`
	Parcels    int `json:"parcels"`
	Payments   int `json:"payments"`
}

// FeedItem is one activity feed entry. Badge is derived from the trailing
// status fragment of the label.
type FeedItem struct {
	Timestamp string       `json:"timestamp"`
	When      string       `json:"when"`
	Label     string       `json:"label"`
	Badge     format.Badge `json:"badge"`
}

type Summary struct {
	Counts        Counts          `json:"counts"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	Feed          []FeedItem      `json:"feed"`
	FeedEmpty     string          `json:"feed_empty,omitempty"`
}

type Aggregator struct {
	orders     *orders.Service
	production *production.Service
	parcels    *parcels.Service
	payments   *payments.Service
}

func NewAggregator(store state.Store) *Aggregator {
	return &Aggregator{
		orders:     orders.NewService(store),
		production: production.NewService(store),
		parcels:    parcels.NewService(store),
		payments:   payments.NewService(store),
	}
}

func (a *Aggregator) Summarize() Summary {
	orderList := a.orders.List()
	lotList := a.production.List()
	parcelList := a.parcels.List()
	paymentList := a.payments.List()

	total := decimal.Zero
	for _, p := range paymentList {
		total = total.Add(p.Amount)
	}

	summary := Summary{
		Counts: Counts{
			Orders:     len(orderList),
			Production: len(lotList),
			Parcels:    len(parcelList),
			Payments:   len(paymentList),
		},
		TotalPayments: total,
		Feed:          buildFeed(orderList, lotList, parcelList, paymentList),
	}
	if len(summary.Feed) == 0 {
		summary.FeedEmpty = "Aucune activité récente"
	}
	return summary
}

func buildFeed(orderList []orders.Order, lotList []production.Lot, parcelList []parcels.Parcel, paymentList []payments.Payment) []FeedItem {
	feed := make([]FeedItem, 0, 4*feedPerCollection)

	// Collections are stored newest-first, so the head is the recent slice.
	for i, o := range orderList {
		if i == feedPerCollection {
			break
		}
		feed = append(feed, newItem(o.CreatedAt, "Commande", o.Client, o.Status))
	}
	for i, lot := range lotList {
		if i == feedPerCollection {
			break
		}
		feed = append(feed, newItem(lot.CreatedAt, "Production", lot.Reference, lot.Status))
	}
	for i, p := range parcelList {
		if i == feedPerCollection {
			break
		}
		feed = append(feed, newItem(p.CreatedAt, "Colis", p.OrderRef, p.Status))
	}
	for i, p := range paymentList {
		if i == feedPerCollection {
			break
		}
		feed = append(feed, newItem(p.CreatedAt, "Paiement", p.Customer, p.Status))
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp > feed[j].Timestamp
	})
	if len(feed) > feedLimit {
		feed = feed[:feedLimit]
	}
	return feed
}

func newItem(timestamp, kind, headline, status string) FeedItem {
	parts := []string{kind}
	if headline != "" {
		parts = append(parts, headline)
	}
	parts = append(parts, status)
	label := strings.Join(parts, labelSeparator)
	return FeedItem{
		Timestamp: timestamp,
		When:      format.FormatDateTime(timestamp),
		Label:     label,
		Badge:     badgeFromLabel(label),
	}
}

// badgeFromLabel classifies the fragment after the last separator.
func badgeFromLabel(label string) format.Badge {
	idx := strings.LastIndex(label, labelSeparator)
	fragment := label
	if idx >= 0 {
		fragment = label[idx+len(labelSeparator):]
	}
	return format.ClassifyStatus(fragment)
}
