package request

import (
	"fmt"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

var timePattern = regexp2.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`, regexp2.None)

func validClockTime(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		if p, isPtr := value.(*string); isPtr {
			if p == nil {
				return nil
			}
			s = *p
		} else {
			return fmt.Errorf("must be a string")
		}
	}
	if s == "" {
		return nil
	}

	matched, err := timePattern.MatchString(s)
	if err != nil {
		return fmt.Errorf("timePattern.MatchString -> %w", err)
	}
	if !matched {
		return fmt.Errorf("must be formatted as HH:MM")
	}

	return nil
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	TaskDate    string `json:"task_date" binding:"required" format:"YYYY-MM-DD"`
	Time        string `json:"time" format:"HH:MM"`
	Status      string `json:"status"`
	Recurrence  string `json:"recurrence"`
}

func (req *CreateTaskRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.TaskDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.Time, validation.By(validClockTime)),
		validation.Field(&req.Status, validation.In("Pending", "Done", "Postponed")),
		validation.Field(&req.Recurrence, validation.In("None", "Daily", "Weekly", "Monthly")),
	)
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TaskDate    *string `json:"task_date" format:"YYYY-MM-DD"`
	Time        *string `json:"time" format:"HH:MM"`
	Status      *string `json:"status"`
	Recurrence  *string `json:"recurrence"`
}

func (req *UpdateTaskRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Length(1, 100)),
		validation.Field(&req.TaskDate, validation.Date(DateLayout)),
		validation.Field(&req.Time, validation.By(validClockTime)),
		validation.Field(&req.Status, validation.In("Pending", "Done", "Postponed")),
		validation.Field(&req.Recurrence, validation.In("None", "Daily", "Weekly", "Monthly")),
	)
}
