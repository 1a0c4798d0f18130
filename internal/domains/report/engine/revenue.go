package engine

import (
	"cmp"
	reportModel "hotelier/internal/domains/report/model"
	"hotelier/internal/domains/reservation/model"
	"hotelier/shared/constant"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// RevenueInput covers nights From..ToExclusive-1. Today splits checked-in stays between modes.
type RevenueInput struct {
	From         time.Time
	ToExclusive  time.Time
	Today        time.Time
	Mode         reportModel.Mode
	GroupBy      reportModel.GroupBy
	Reservations []model.Reservation
}

type RevenueBucket struct {
	Key    reportModel.GroupKey
	Amount decimal.Decimal
	Nights int
}

type RevenueResult struct {
	From        time.Time
	ToExclusive time.Time
	Mode        reportModel.Mode
	GroupBy     reportModel.GroupBy
	Total       decimal.Decimal
	Nights      int
	Buckets     []RevenueBucket
}

type revenueBuckets struct {
	order   []reportModel.GroupKey
	buckets map[reportModel.GroupKey]*RevenueBucket
}

// add rounds the running amount to the cent after every addition.
func (b *revenueBuckets) add(key reportModel.GroupKey, amount decimal.Decimal) {
	bucket, ok := b.buckets[key]
	if !ok {
		bucket = &RevenueBucket{Key: key, Amount: decimal.Zero}
		b.buckets[key] = bucket
		b.order = append(b.order, key)
	}

	bucket.Amount = bucket.Amount.Add(amount).Round(moneyPlaces)
	bucket.Nights++
}

// Revenue prorates every matching reservation night-by-night and buckets the nights in range.
func Revenue(in RevenueInput) RevenueResult {
	toExclusive := in.ToExclusive
	if !toExclusive.After(in.From) {
		toExclusive = in.From.AddDate(0, 0, 1)
	}

	result := RevenueResult{
		From:        in.From,
		ToExclusive: toExclusive,
		Mode:        in.Mode,
		GroupBy:     in.GroupBy,
		Total:       decimal.Zero,
	}

	acc := &revenueBuckets{buckets: map[reportModel.GroupKey]*RevenueBucket{}}

	for _, res := range FilterWindow(in.Reservations, in.From, toExclusive, RevenueStatuses()) {
		nightly := Prorate(res.TotalAmount, res.CheckInDate, res.CheckOutDate)

		for idx, amount := range nightly {
			night := res.CheckInDate.AddDate(0, 0, idx)
			if night.Before(in.From) || !night.Before(toExclusive) {
				continue
			}

			if !IncludeNight(in.Mode, res.Status, night, in.Today) {
				continue
			}

			result.Nights++
			addNight(acc, in.GroupBy, res, night, amount)
		}
	}

	for _, key := range acc.order {
		bucket := acc.buckets[key]
		result.Buckets = append(result.Buckets, *bucket)
		result.Total = result.Total.Add(bucket.Amount)
	}

	sortBuckets(result.Buckets)

	return result
}

func addNight(acc *revenueBuckets, groupBy reportModel.GroupBy, res model.Reservation, night time.Time, amount decimal.Decimal) {
	switch groupBy {
	case reportModel.GroupByDay:
		date := dateKey(night)
		acc.add(reportModel.GroupKey{ID: date, Name: date}, amount)
	case reportModel.GroupByBranch:
		acc.add(branchKey(res), amount)
	case reportModel.GroupByHotel:
		acc.add(hotelKey(res), amount)
	case reportModel.GroupByRoomType, reportModel.GroupByRoom:
		if len(res.Lines) == 0 {
			acc.add(reportModel.GroupKey{Name: reportModel.Unassigned}, amount)

			return
		}

		for idx, share := range LineShares(amount, res.Lines) {
			line := res.Lines[idx]
			if groupBy == reportModel.GroupByRoomType {
				acc.add(reportModel.GroupKey{ID: line.RoomTypeID, Name: line.RoomTypeName}, share)
			} else {
				acc.add(reportModel.GroupKey{ID: line.RoomID, Name: line.RoomNumber}, share)
			}
		}
	}
}

func branchKey(res model.Reservation) reportModel.GroupKey {
	if res.BranchName == nil || *res.BranchName == "" {
		return reportModel.GroupKey{Name: reportModel.UnknownBranch}
	}

	key := reportModel.GroupKey{Name: *res.BranchName}
	if res.BranchID != nil {
		key.ID = *res.BranchID
	}

	return key
}

func hotelKey(res model.Reservation) reportModel.GroupKey {
	if res.HotelName == nil || *res.HotelName == "" {
		return reportModel.GroupKey{Name: reportModel.UnknownHotel}
	}

	return reportModel.GroupKey{ID: *res.HotelName, Name: *res.HotelName}
}

// sortBuckets orders day buckets chronologically (ISO dates sort as text) and the rest by name.
func sortBuckets(buckets []RevenueBucket) {
	slices.SortFunc(buckets, func(a, b RevenueBucket) int {
		return cmp.Or(cmp.Compare(a.Key.Name, b.Key.Name), cmp.Compare(a.Key.ID, b.Key.ID))
	})
}

// ByID indexes buckets by their key ID.
func (r RevenueResult) ByID() map[string]decimal.Decimal {
	index := make(map[string]decimal.Decimal, len(r.Buckets))
	for _, bucket := range r.Buckets {
		index[bucket.Key.ID] = bucket.Amount
	}

	return index
}

func dateKey(date time.Time) string {
	return date.Format(constant.DateOnlyFormat)
}
