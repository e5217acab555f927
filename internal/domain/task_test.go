package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTask_Occurrences(t *testing.T) {
	tests := []struct {
		name string
		task Task
		from time.Time
		to   time.Time
		want []time.Time
	}{
		{
			name: "non-recurring task occurs once",
			task: Task{TaskDate: date(2025, time.March, 10), Recurrence: RecurrenceNone},
			from: date(2025, time.March, 1),
			to:   date(2025, time.March, 31),
			want: []time.Time{date(2025, time.March, 10)},
		},
		{
			name: "non-recurring task outside the window is dropped",
			task: Task{TaskDate: date(2025, time.April, 2), Recurrence: RecurrenceNone},
			from: date(2025, time.March, 1),
			to:   date(2025, time.March, 31),
			want: nil,
		},
		{
			name: "daily recurrence steps one day at a time",
			task: Task{TaskDate: date(2025, time.March, 29), Recurrence: RecurrenceDaily},
			from: date(2025, time.March, 29),
			to:   date(2025, time.April, 1),
			want: []time.Time{
				date(2025, time.March, 29),
				date(2025, time.March, 30),
				date(2025, time.March, 31),
				date(2025, time.April, 1),
			},
		},
		{
			name: "weekly recurrence steps seven days",
			task: Task{TaskDate: date(2025, time.March, 3), Recurrence: RecurrenceWeekly},
			from: date(2025, time.March, 1),
			to:   date(2025, time.March, 31),
			want: []time.Time{
				date(2025, time.March, 3),
				date(2025, time.March, 10),
				date(2025, time.March, 17),
				date(2025, time.March, 24),
				date(2025, time.March, 31),
			},
		},
		{
			name: "monthly recurrence keeps the day of month",
			task: Task{TaskDate: date(2025, time.January, 15), Recurrence: RecurrenceMonthly},
			from: date(2025, time.February, 1),
			to:   date(2025, time.April, 30),
			want: []time.Time{
				date(2025, time.February, 15),
				date(2025, time.March, 15),
				date(2025, time.April, 15),
			},
		},
		{
			name: "recurring task starting before the window only yields in-window dates",
			task: Task{TaskDate: date(2025, time.March, 1), Recurrence: RecurrenceDaily},
			from: date(2025, time.March, 30),
			to:   date(2025, time.March, 31),
			want: []time.Time{
				date(2025, time.March, 30),
				date(2025, time.March, 31),
			},
		},
		{
			name: "inverted window yields nothing",
			task: Task{TaskDate: date(2025, time.March, 1), Recurrence: RecurrenceDaily},
			from: date(2025, time.March, 31),
			to:   date(2025, time.March, 1),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.task.Occurrences(tt.from, tt.to)

			assert.Equal(t, tt.want, got)
		})
	}
}
