package models

import "iter"

type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`
	TotalBookings int    `json:"totalBookings"`
	LastBooking   string `json:"lastBooking"`
	JoinedDate    string `json:"joinedDate"`
}

func (c Customer) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", c.ID},
		field{"name", c.Name},
		field{"mobile", c.Mobile},
		field{"email", c.Email},
		field{"totalBookings", c.TotalBookings},
		field{"lastBooking", c.LastBooking},
		field{"joinedDate", c.JoinedDate},
	)
}

// CustomerBooking is one entry of a customer's history across all services.
// Route fields are set for rides, HotelName for stays.
type CustomerBooking struct {
	ID          string  `json:"id"`
	CustomerID  string  `json:"customerId"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Source      *string `json:"source,omitempty"`
	Destination *string `json:"destination,omitempty"`
	HotelName   *string `json:"hotelName,omitempty"`
	Amount      int64   `json:"amount"`
	Status      string  `json:"status"`
}

func (b CustomerBooking) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", b.ID},
		field{"customerId", b.CustomerID},
		field{"type", b.Type},
		field{"date", b.Date},
		field{"source", opt(b.Source)},
		field{"destination", opt(b.Destination)},
		field{"hotelName", opt(b.HotelName)},
		field{"amount", b.Amount},
		field{"status", b.Status},
	)
}

// Details is the text shown in the booking history: the hotel for stays,
// otherwise the route.
func (b CustomerBooking) Details() string {
	if b.Type == "hotel" {
		if b.HotelName != nil {
			return *b.HotelName
		}
		return ""
	}
	src, dst := "", ""
	if b.Source != nil {
		src = *b.Source
	}
	if b.Destination != nil {
		dst = *b.Destination
	}
	return src + " to " + dst
}
