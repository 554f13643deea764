package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is a free-text plan field. It accepts any JSON scalar so that loosely
// typed front-ends keep working: null, false, 0 and "" all decode to the
// empty value, which counts as missing for required fields.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(x)
	case bool:
		if x {
			*t = "true"
		} else {
			*t = ""
		}
	case float64:
		if x == 0 {
			*t = ""
		} else {
			*t = Text(strconv.FormatFloat(x, 'f', -1, 64))
		}
	default:
		return fmt.Errorf("unsupported value for text field: %s", b)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}

// PlanSubmission is a date plan posted by the front-end.
type PlanSubmission struct {
	Area    Text `json:"area" validate:"required"`
	Budget  Text `json:"budget" validate:"required"`
	Vibes   Text `json:"vibes"`
	Date    Text `json:"date" validate:"required"`
	Time    Text `json:"time" validate:"required"`
	Place   Text `json:"place" validate:"required"`
	Money   Text `json:"money" validate:"required"`
	Steps   Text `json:"steps"` // pipe-delimited schedule
	Note    Text `json:"note"`
	ToEmail Text `json:"to_email"`
}

// MailMessage is a composed plan email ready for the mail sender.
type MailMessage struct {
	ID          string
	FromName    string
	FromAddress string
	To          string
	Subject     string
	HTML        string
}

// From returns the formatted sender, e.g. `"Love Plan" <me@example.com>`.
func (m *MailMessage) From() string {
	return fmt.Sprintf("\"%s\" <%s>", m.FromName, m.FromAddress)
}

// Ack is the success response body.
type Ack struct {
	OK bool `json:"ok"`
}

// Failure is the error response body.
type Failure struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
