package domain

import "time"

type TaskStatus string

const (
	TaskPending   TaskStatus = "Pending"
	TaskDone      TaskStatus = "Done"
	TaskPostponed TaskStatus = "Postponed"
)

type Recurrence string

const (
	RecurrenceNone    Recurrence = "None"
	RecurrenceDaily   Recurrence = "Daily"
	RecurrenceWeekly  Recurrence = "Weekly"
	RecurrenceMonthly Recurrence = "Monthly"
)

type Task struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TaskDate    time.Time  `json:"task_date"`
	Time        string     `json:"time,omitempty"` // HH:MM, display only
	Status      TaskStatus `json:"status"`
	Recurrence  Recurrence `json:"recurrence"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Occurrences expands the task's recurrence into the concrete dates falling
// within [from, to], inclusive. A non-recurring task occurs at most once.
func (t *Task) Occurrences(from, to time.Time) []time.Time {
	if to.Before(from) {
		return nil
	}

	var dates []time.Time
	d := t.TaskDate
	for !d.After(to) {
		if !d.Before(from) {
			dates = append(dates, d)
		}

		switch t.Recurrence {
		case RecurrenceDaily:
			d = d.AddDate(0, 0, 1)
		case RecurrenceWeekly:
			d = d.AddDate(0, 0, 7)
		case RecurrenceMonthly:
			d = d.AddDate(0, 1, 0)
		default:
			return dates
		}
	}

	return dates
}
