// Package forecast rolls fixed-interval forecast samples up into one summary
// per calendar day.
package forecast

import (
	"math"

	"github.com/MKhiriev/go-weather-dashboard/models"
)

// MaxDays is the maximum number of daily summaries produced by [Aggregate].
const MaxDays = 7

const (
	dayLabelLayout = "Monday, January 02"
	dayKeyLayout   = "2006-01-02"
)

type dayBucket struct {
	key          string
	label        string
	icon         string
	temps        []float64
	descriptions []string
	humidity     []float64
	wind         []float64
}

// Aggregate groups samples by the calendar date of their timestamp, in the
// location carried by each timestamp, and summarises every group.
//
// Days keep the order in which they are first encountered and at most
// [MaxDays] summaries are returned. An empty input yields an empty, non-nil
// slice.
func Aggregate(samples []models.ForecastSample) []models.DailyForecast {
	buckets := make([]*dayBucket, 0, MaxDays)
	index := make(map[string]*dayBucket, MaxDays)

	for _, s := range samples {
		key := s.Time.Format(dayKeyLayout)

		b, ok := index[key]
		if !ok {
			b = &dayBucket{
				key:   key,
				label: s.Time.Format(dayLabelLayout),
				icon:  s.Icon,
			}
			index[key] = b
			buckets = append(buckets, b)
		}

		b.temps = append(b.temps, s.Temperature)
		b.descriptions = append(b.descriptions, s.Description)
		b.humidity = append(b.humidity, s.Humidity)
		b.wind = append(b.wind, s.WindSpeed)
	}

	if len(buckets) > MaxDays {
		buckets = buckets[:MaxDays]
	}

	days := make([]models.DailyForecast, 0, len(buckets))
	for _, b := range buckets {
		days = append(days, b.summary())
	}

	return days
}

func (b *dayBucket) summary() models.DailyForecast {
	lo, hi := b.temps[0], b.temps[0]
	for _, t := range b.temps[1:] {
		lo = math.Min(lo, t)
		hi = math.Max(hi, t)
	}

	return models.DailyForecast{
		Date:        b.label,
		Day:         b.key,
		TempMax:     int(math.Round(hi)),
		TempMin:     int(math.Round(lo)),
		Description: mostFrequent(b.descriptions),
		Humidity:    int(math.Round(mean(b.humidity))),
		WindSpeed:   math.Round(mean(b.wind)*10) / 10,
		Icon:        b.icon,
	}
}

// mostFrequent returns the mode of values. On a tie the value that appears
// first wins.
func mostFrequent(values []string) string {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var best string
	bestCount := 0
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}

	return best
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
