package domain

// Status represents a lightweight state value shared by the console entities.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusRejected  Status = "rejected"
	StatusBlocked   Status = "blocked"

	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ServiceType names the booking verticals of the console.
type ServiceType string

const (
	ServiceBus   ServiceType = "bus"
	ServiceHotel ServiceType = "hotel"
	ServiceTaxi  ServiceType = "taxi"
	ServiceBike  ServiceType = "bike"
)

// Services lists the verticals in display order.
var Services = []ServiceType{ServiceBus, ServiceHotel, ServiceTaxi, ServiceBike}

// ServiceLabel maps form values like "bus_booking" to "Bus Booking".
func ServiceLabel(v string) string {
	switch v {
	case "bus_booking":
		return "Bus Booking"
	case "hotel_booking":
		return "Hotel Booking"
	case "taxi_booking":
		return "Taxi Booking"
	case "bike_booking":
		return "Bike Booking"
	case "all":
		return "All Services"
	default:
		return v
	}
}

// ServiceValue is the inverse of ServiceLabel, used to prefill edit forms.
func ServiceValue(label string) string {
	switch label {
	case "Bus Booking":
		return "bus_booking"
	case "Hotel Booking":
		return "hotel_booking"
	case "Taxi Booking":
		return "taxi_booking"
	case "Bike Booking":
		return "bike_booking"
	case "All Services":
		return "all"
	default:
		return label
	}
}
