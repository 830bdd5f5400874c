package models

import "iter"

// HotelManager manages one listed property.
type HotelManager struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	HotelName string `json:"hotelName"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

func (m HotelManager) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", m.ID},
		field{"name", m.Name},
		field{"mobile", m.Mobile},
		field{"email", m.Email},
		field{"hotelName", m.HotelName},
		field{"location", m.Location},
		field{"status", m.Status},
	)
}

type HotelBooking struct {
	ID           string `json:"id"`
	HotelID      string `json:"hotelId"`
	HotelName    string `json:"hotelName"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	RoomType     string `json:"roomType"`
	Guests       int    `json:"guests"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
}

func (b HotelBooking) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", b.ID},
		field{"hotelId", b.HotelID},
		field{"hotelName", b.HotelName},
		field{"customerName", b.CustomerName},
		field{"phone", b.Phone},
		field{"email", b.Email},
		field{"checkInDate", b.CheckInDate},
		field{"checkOutDate", b.CheckOutDate},
		field{"roomType", b.RoomType},
		field{"guests", b.Guests},
		field{"amount", b.Amount},
		field{"status", b.Status},
	)
}
