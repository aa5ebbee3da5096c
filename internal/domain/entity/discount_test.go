package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscount_ActiveAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	start := now.Add(-24 * time.Hour)
	end := now.Add(24 * time.Hour)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		at    time.Time
		want  bool
	}{
		{name: "inside window", start: &start, end: &end, at: now, want: true},
		{name: "unbounded both directions", start: nil, end: nil, at: now, want: true},
		{name: "unbounded start", start: nil, end: &end, at: now, want: true},
		{name: "unbounded end", start: &start, end: nil, at: now, want: true},
		{name: "start boundary is inclusive", start: &now, end: &end, at: now, want: true},
		{name: "end boundary is inclusive", start: &start, end: &now, at: now, want: true},
		{name: "just after end", start: &start, end: &now, at: now.Add(time.Microsecond), want: false},
		{name: "before start", start: &now, end: &end, at: now.Add(-time.Microsecond), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Discount{Name: "SPRING15", StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, d.ActiveAt(tt.at))
		})
	}
}

func TestDiscount_AppliesTo(t *testing.T) {
	d := &Discount{Name: "SPRING15", GameIDs: []int64{3, 7}}

	assert.True(t, d.AppliesTo(7))
	assert.False(t, d.AppliesTo(4))
}
