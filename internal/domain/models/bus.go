package models

import "iter"

// BusOperator is a company running buses on the platform.
type BusOperator struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	BusCount int    `json:"busCount"`
}

func (o BusOperator) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", o.ID},
		field{"name", o.Name},
		field{"mobile", o.Mobile},
		field{"email", o.Email},
		field{"status", o.Status},
		field{"busCount", o.BusCount},
	)
}

// BusBooking is a seat booking on an operator's bus.
type BusBooking struct {
	ID           string `json:"id"`
	BusRegNumber string `json:"busRegNumber"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	From         string `json:"from"`
	To           string `json:"to"`
	JourneyDate  string `json:"journeyDate"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
}

func (b BusBooking) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", b.ID},
		field{"busRegNumber", b.BusRegNumber},
		field{"customerName", b.CustomerName},
		field{"phone", b.Phone},
		field{"email", b.Email},
		field{"from", b.From},
		field{"to", b.To},
		field{"journeyDate", b.JourneyDate},
		field{"amount", b.Amount},
		field{"status", b.Status},
	)
}
