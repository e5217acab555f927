package response

import (
	"github.com/farmstead/farmstead-api/internal/domain"
)

// CalendarEntry is one expanded occurrence of a possibly recurring task.
// Date is the concrete day, formatted YYYY-MM-DD.
type CalendarEntry struct {
	Date string      `json:"date"`
	Task domain.Task `json:"task"`
}
