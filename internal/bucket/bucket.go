package bucket

import (
	"fmt"
	"sort"
	"time"

	"github.com/evtools/evtchart/internal/models"
)

// Label format for interval buckets on the chart x-axis. Includes the year
// so logs spanning year boundaries keep distinct labels.
const timeLabelLayout = "2006-01-02 15:04"

// Interval resolves a resolution string to a duration.
func Interval(resolution string) (time.Duration, error) {
	switch resolution {
	case "1m":
		return time.Minute, nil
	case "5m":
		return 5 * time.Minute, nil
	case "30m":
		return 30 * time.Minute, nil
	case "1h":
		return time.Hour, nil
	default:
		return 0, fmt.Errorf("unsupported interval: %s", resolution)
	}
}

// Align aligns a timestamp to the specified resolution and alignment.
func Align(t time.Time, resolution string, alignment string) (time.Time, error) {
	duration, err := Interval(resolution)
	if err != nil {
		return t, err
	}

	// Truncate to the resolution
	aligned := t.Truncate(duration)

	switch alignment {
	case "floor":
		return aligned, nil
	case "ceil":
		if t.After(aligned) {
			return aligned.Add(duration), nil
		}
		return aligned, nil
	case "round":
		half := duration / 2
		if t.Sub(aligned) >= half {
			return aligned.Add(duration), nil
		}
		return aligned, nil
	default:
		return t, fmt.Errorf("unsupported alignment: %s", alignment)
	}
}

// ByInterval folds records into chronological time buckets. Buckets between
// the first and last occupied slot are zero-filled so quiet stretches show up
// as gaps on the chart. Empty input produces an empty series.
func ByInterval(records []models.LogRecord, resolution string, alignment string) (models.Series, error) {
	duration, err := Interval(resolution)
	if err != nil {
		return nil, err
	}

	counts := make(map[time.Time]int)
	var first, last time.Time
	for _, rec := range records {
		aligned, err := Align(rec.Timestamp, resolution, alignment)
		if err != nil {
			return nil, err
		}
		if len(counts) == 0 || aligned.Before(first) {
			first = aligned
		}
		if len(counts) == 0 || aligned.After(last) {
			last = aligned
		}
		counts[aligned]++
	}

	if len(counts) == 0 {
		return models.Series{}, nil
	}

	var series models.Series
	for t := first; !t.After(last); t = t.Add(duration) {
		series = append(series, models.Bucket{
			Label: t.Format(timeLabelLayout),
			Time:  t,
			Count: counts[t],
		})
	}
	return series, nil
}

// ByCategory folds records into one bucket per event type. Order is either
// "count" (descending, ties broken by name) or "name" (ascending).
func ByCategory(records []models.LogRecord, order string) (models.Series, error) {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.EventType]++
	}

	series := make(models.Series, 0, len(counts))
	for event, count := range counts {
		series = append(series, models.Bucket{Label: event, Count: count})
	}

	switch order {
	case "count":
		sort.Slice(series, func(i, j int) bool {
			if series[i].Count != series[j].Count {
				return series[i].Count > series[j].Count
			}
			return series[i].Label < series[j].Label
		})
	case "name":
		sort.Slice(series, func(i, j int) bool {
			return series[i].Label < series[j].Label
		})
	default:
		return nil, fmt.Errorf("unsupported order: %s", order)
	}
	return series, nil
}
