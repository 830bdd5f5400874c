package models

import "iter"

// Driver is a taxi driver or bike rider; both verticals onboard the same profile.
type Driver struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Mobile           string `json:"mobile"`
	Email            string `json:"email"`
	VehicleType      string `json:"vehicleType"`
	VehicleRegNumber string `json:"vehicleRegNumber"`
	Experience       string `json:"experience"`
	Status           string `json:"status"`
}

func (d Driver) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", d.ID},
		field{"name", d.Name},
		field{"mobile", d.Mobile},
		field{"email", d.Email},
		field{"vehicleType", d.VehicleType},
		field{"vehicleRegNumber", d.VehicleRegNumber},
		field{"experience", d.Experience},
		field{"status", d.Status},
	)
}

// TaxiBooking is a single taxi ride.
type TaxiBooking struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	DriverName   string `json:"driverName"`
	From         string `json:"from"`
	To           string `json:"to"`
	RideDate     string `json:"rideDate"`
	VehicleType  string `json:"vehicleType"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
}

func (b TaxiBooking) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", b.ID},
		field{"customerName", b.CustomerName},
		field{"driverName", b.DriverName},
		field{"from", b.From},
		field{"to", b.To},
		field{"rideDate", b.RideDate},
		field{"vehicleType", b.VehicleType},
		field{"amount", b.Amount},
		field{"status", b.Status},
	)
}

// BikeBooking is a single bike ride.
type BikeBooking struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	RiderName    string `json:"riderName"`
	From         string `json:"from"`
	To           string `json:"to"`
	RideDate     string `json:"rideDate"`
	VehicleType  string `json:"vehicleType"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
}

func (b BikeBooking) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", b.ID},
		field{"customerName", b.CustomerName},
		field{"riderName", b.RiderName},
		field{"from", b.From},
		field{"to", b.To},
		field{"rideDate", b.RideDate},
		field{"vehicleType", b.VehicleType},
		field{"amount", b.Amount},
		field{"status", b.Status},
	)
}
