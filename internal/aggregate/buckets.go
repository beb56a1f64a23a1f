package aggregate

import (
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/models"
	"github.com/HuyTapCode05/quanlythuchi/internal/types"
)

const (
	DefaultMonths = 6
	DefaultWeeks  = 8
)

// MonthBucket is the income and expense of one calendar month.
type MonthBucket struct {
	Month types.Month `json:"month" swaggertype:"string" example:"2024-03"`
	Label string      `json:"label" example:"Th3/2024"`
	Bucket
}

// MonthlyBuckets groups transactions into the count calendar months
// ending with the month of now, oldest first. Months are determined in
// the location of now. Transactions outside the window are ignored.
func MonthlyBuckets(transactions []models.Transaction, now time.Time, count int) []MonthBucket {
	if count <= 0 {
		count = DefaultMonths
	}

	current := types.MonthOf(now)
	buckets := make([]MonthBucket, count)
	index := make(map[types.Month]int, count)

	for i := range count {
		m := current.AddDate(0, i-count+1)
		buckets[i] = MonthBucket{Month: m, Label: m.Label(), Bucket: newBucket()}
		index[m] = i
	}

	for _, t := range transactions {
		i, ok := index[types.MonthOf(t.CreatedAt.In(now.Location()))]
		if !ok {
			continue
		}
		buckets[i].add(t)
	}

	return buckets
}

// WeekBucket is the income and expense of a seven day window.
type WeekBucket struct {
	Start time.Time `json:"start" example:"2024-03-09T00:00:00Z"`
	End   time.Time `json:"end" example:"2024-03-15T23:59:59.999Z"`
	Bucket
}

// WeeklyBuckets groups transactions into count windows of seven days.
// The last window ends with the day of now, the windows before it
// follow back to back.
func WeeklyBuckets(transactions []models.Transaction, now time.Time, count int) []WeekBucket {
	if count <= 0 {
		count = DefaultWeeks
	}

	buckets := make([]WeekBucket, count)
	last := endOfDay(now)

	for i := range count {
		end := last.AddDate(0, 0, -7*(count-1-i))
		buckets[i] = WeekBucket{
			Start:  startOfDay(end.AddDate(0, 0, -6)),
			End:    end,
			Bucket: newBucket(),
		}
	}

	for _, t := range transactions {
		for i := range buckets {
			if !t.CreatedAt.Before(buckets[i].Start) && !t.CreatedAt.After(buckets[i].End) {
				buckets[i].add(t)
				break
			}
		}
	}

	return buckets
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
