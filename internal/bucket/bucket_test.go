package bucket

import (
	"testing"
	"time"

	"github.com/evtools/evtchart/internal/models"
)

func record(ts string, event string) models.LogRecord {
	t, err := time.Parse("2006-01-02T15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return models.LogRecord{Timestamp: t, EventType: event}
}

func TestAlignFloor(t *testing.T) {
	ts := time.Date(2021, 5, 1, 19, 17, 42, 0, time.UTC)

	aligned, err := Align(ts, "30m", "floor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2021, 5, 1, 19, 0, 0, 0, time.UTC)
	if !aligned.Equal(want) {
		t.Errorf("expected %v, got %v", want, aligned)
	}
}

func TestAlignCeil(t *testing.T) {
	ts := time.Date(2021, 5, 1, 19, 17, 42, 0, time.UTC)

	aligned, err := Align(ts, "30m", "ceil")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2021, 5, 1, 19, 30, 0, 0, time.UTC)
	if !aligned.Equal(want) {
		t.Errorf("expected %v, got %v", want, aligned)
	}

	// Already aligned timestamps stay put.
	aligned, err = Align(want, "30m", "ceil")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !aligned.Equal(want) {
		t.Errorf("expected %v, got %v", want, aligned)
	}
}

func TestAlignRound(t *testing.T) {
	down := time.Date(2021, 5, 1, 19, 10, 0, 0, time.UTC)
	up := time.Date(2021, 5, 1, 19, 20, 0, 0, time.UTC)

	aligned, err := Align(down, "30m", "round")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aligned.Minute() != 0 {
		t.Errorf("expected 19:10 to round down, got %v", aligned)
	}

	aligned, err = Align(up, "30m", "round")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aligned.Minute() != 30 {
		t.Errorf("expected 19:20 to round up, got %v", aligned)
	}
}

func TestAlignInvalid(t *testing.T) {
	ts := time.Now()
	if _, err := Align(ts, "2h", "floor"); err == nil {
		t.Error("expected error for unsupported interval")
	}
	if _, err := Align(ts, "30m", "sideways"); err == nil {
		t.Error("expected error for unsupported alignment")
	}
}

func TestByIntervalCountsSum(t *testing.T) {
	records := []models.LogRecord{
		record("2021-05-01T19:01:27", "LOGIN"),
		record("2021-05-01T19:05:00", "LOGIN"),
		record("2021-05-01T19:40:00", "LOGOUT"),
		record("2021-05-01T20:10:00", "LOGIN"),
	}

	series, err := ByInterval(records, "30m", "floor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if series.Total() != len(records) {
		t.Errorf("expected bucket counts to sum to %d, got %d", len(records), series.Total())
	}

	// 19:00 .. 20:00 inclusive at 30m steps = 3 buckets.
	if len(series) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(series))
	}
	if series[0].Count != 2 {
		t.Errorf("expected first bucket count 2, got %d", series[0].Count)
	}
	if series[1].Count != 1 {
		t.Errorf("expected second bucket count 1, got %d", series[1].Count)
	}
}

func TestByIntervalZeroFill(t *testing.T) {
	records := []models.LogRecord{
		record("2021-05-01T19:00:00", "A"),
		record("2021-05-01T21:00:00", "B"),
	}

	series, err := ByInterval(records, "1h", "floor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series) != 3 {
		t.Fatalf("expected 3 buckets including the empty one, got %d", len(series))
	}
	if series[0].Label != "2021-05-01 19:00" {
		t.Errorf("expected year-qualified label, got %q", series[0].Label)
	}
	if series[1].Count != 0 {
		t.Errorf("expected middle bucket to be zero-filled, got %d", series[1].Count)
	}
	if !series[0].Time.Before(series[1].Time) || !series[1].Time.Before(series[2].Time) {
		t.Error("expected buckets in chronological order")
	}
}

func TestByIntervalEmpty(t *testing.T) {
	series, err := ByInterval(nil, "30m", "floor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 0 {
		t.Errorf("expected empty series, got %d buckets", len(series))
	}
}

func TestByCategoryCountOrder(t *testing.T) {
	records := []models.LogRecord{
		record("2021-05-01T19:01:00", "LOGIN"),
		record("2021-05-01T19:02:00", "LOGOUT"),
		record("2021-05-01T19:03:00", "LOGIN"),
		record("2021-05-01T19:04:00", "LOGIN"),
	}

	series, err := ByCategory(records, "count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(series))
	}
	if series[0].Label != "LOGIN" || series[0].Count != 3 {
		t.Errorf("expected LOGIN bucket with count 3 first, got %s=%d", series[0].Label, series[0].Count)
	}
	if series[1].Label != "LOGOUT" || series[1].Count != 1 {
		t.Errorf("expected LOGOUT bucket with count 1, got %s=%d", series[1].Label, series[1].Count)
	}
}

func TestByCategoryNameOrderAndTies(t *testing.T) {
	records := []models.LogRecord{
		record("2021-05-01T19:01:00", "B"),
		record("2021-05-01T19:02:00", "A"),
		record("2021-05-01T19:03:00", "C"),
	}

	series, err := ByCategory(records, "name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series[0].Label != "A" || series[1].Label != "B" || series[2].Label != "C" {
		t.Errorf("expected name order A,B,C, got %v", series.Labels())
	}

	// Equal counts under count order fall back to name order.
	series, err = ByCategory(records, "count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series[0].Label != "A" || series[1].Label != "B" || series[2].Label != "C" {
		t.Errorf("expected tie-broken order A,B,C, got %v", series.Labels())
	}
}

func TestByCategoryInvalidOrder(t *testing.T) {
	if _, err := ByCategory(nil, "shuffled"); err == nil {
		t.Error("expected error for unsupported order")
	}
}
