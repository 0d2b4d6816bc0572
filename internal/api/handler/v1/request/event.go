package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// EventRequest covers both create and update, which take the same body.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date" format:"YYYY-MM-DD"`
	Time        string `json:"time" format:"HH:MM"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Capacity    int    `json:"capacity"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Time, validation.Required, validation.Date("15:04")),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Capacity, validation.Required, validation.Min(1)),
	)
}
