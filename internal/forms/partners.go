package forms

var statusMessages = map[string]string{
	"status.oneof": "Status must be one of pending, submitted, approved, rejected or blocked",
}

func withStatus(m map[string]string) map[string]string {
	for k, v := range statusMessages {
		m[k] = v
	}
	return m
}

type OperatorForm struct {
	Name              string `json:"name" validate:"min=2"`
	Mobile            string `json:"mobile" validate:"min=10"`
	Email             string `json:"email" validate:"email"`
	Address           string `json:"address" validate:"min=5"`
	IdentityCard      string `json:"identityCard" validate:"required"`
	BusinessLicense   string `json:"businessLicense" validate:"required"`
	BankName          string `json:"bankName" validate:"min=2"`
	AccountNumber     string `json:"accountNumber" validate:"min=5"`
	AccountHolderName string `json:"accountHolderName" validate:"min=2"`
	Status            string `json:"status" validate:"omitempty,oneof=pending submitted approved rejected blocked"`
}

func (OperatorForm) Entity() string { return "Bus operator" }

func (f OperatorForm) Success(edit bool) string { return saved(f.Entity(), edit, "added") }

func (OperatorForm) messages() map[string]string {
	return withStatus(map[string]string{
		"name":              "Name must be at least 2 characters",
		"mobile":            "Valid mobile number is required",
		"email":             "Valid email is required",
		"address":           "Address is required",
		"identityCard":      "Identity card is required",
		"businessLicense":   "Business license is required",
		"bankName":          "Bank name is required",
		"accountNumber":     "Account number is required",
		"accountHolderName": "Account holder name is required",
	})
}

// DriverForm onboards a taxi driver.
type DriverForm struct {
	Name                string `json:"name" validate:"min=2"`
	Mobile              string `json:"mobile" validate:"min=10"`
	Email               string `json:"email" validate:"email"`
	Age                 string `json:"age" validate:"required"`
	Address             string `json:"address" validate:"min=5"`
	Experience          string `json:"experience" validate:"required"`
	VehicleType         string `json:"vehicleType" validate:"required"`
	VehicleRegistration string `json:"vehicleRegistration" validate:"min=5"`
	VehicleInsurance    string `json:"vehicleInsurance" validate:"required"`
	Status              string `json:"status" validate:"omitempty,oneof=pending submitted approved rejected blocked"`
}

func (DriverForm) Entity() string { return "Taxi driver" }

func (f DriverForm) Success(edit bool) string { return saved(f.Entity(), edit, "added") }

func (DriverForm) messages() map[string]string {
	return withStatus(map[string]string{
		"name":                "Name must be at least 2 characters",
		"mobile":              "Valid mobile number is required",
		"email":               "Valid email is required",
		"age":                 "Age is required",
		"address":             "Address is required",
		"experience":          "Experience is required",
		"vehicleType":         "Vehicle type is required",
		"vehicleRegistration": "Vehicle registration is required",
		"vehicleInsurance":    "Vehicle insurance details are required",
	})
}

// RiderForm onboards a bike rider.
type RiderForm struct {
	Name             string `json:"name" validate:"min=2"`
	Mobile           string `json:"mobile" validate:"min=10"`
	Email            string `json:"email" validate:"email"`
	Age              string `json:"age" validate:"required"`
	Address          string `json:"address" validate:"min=5"`
	Experience       string `json:"experience" validate:"required"`
	BikeType         string `json:"bikeType" validate:"required"`
	BikeRegistration string `json:"bikeRegistration" validate:"min=5"`
	BikeInsurance    string `json:"bikeInsurance" validate:"required"`
	Status           string `json:"status" validate:"omitempty,oneof=pending submitted approved rejected blocked"`
}

func (RiderForm) Entity() string { return "Bike rider" }

func (f RiderForm) Success(edit bool) string { return saved(f.Entity(), edit, "added") }

func (RiderForm) messages() map[string]string {
	return withStatus(map[string]string{
		"name":             "Name must be at least 2 characters",
		"mobile":           "Valid mobile number is required",
		"email":            "Valid email is required",
		"age":              "Age is required",
		"address":          "Address is required",
		"experience":       "Experience is required",
		"bikeType":         "Bike type is required",
		"bikeRegistration": "Bike registration is required",
		"bikeInsurance":    "Bike insurance details are required",
	})
}

// ManagerForm onboards a hotel manager together with the property.
type ManagerForm struct {
	Name              string `json:"name" validate:"min=2"`
	Mobile            string `json:"mobile" validate:"min=10"`
	Email             string `json:"email" validate:"email"`
	HotelName         string `json:"hotelName" validate:"min=3"`
	BusinessLicense   string `json:"businessLicense" validate:"min=3"`
	Address           string `json:"address" validate:"min=5"`
	City              string `json:"city" validate:"min=2"`
	Locality          string `json:"locality" validate:"min=2"`
	Landmark          string `json:"landmark"`
	Pincode           string `json:"pincode" validate:"min=5"`
	TotalRooms        string `json:"totalRooms" validate:"required"`
	StandardRooms     string `json:"standardRooms"`
	StandardRoomPrice string `json:"standardRoomPrice" validate:"required"`
	LuxuryRooms       string `json:"luxuryRooms"`
	LuxuryRoomPrice   string `json:"luxuryRoomPrice" validate:"required"`
	CheckinTime       string `json:"checkinTime" validate:"required"`
	CheckoutTime      string `json:"checkoutTime" validate:"required"`
	BankName          string `json:"bankName" validate:"min=2"`
	AccountNumber     string `json:"accountNumber" validate:"min=5"`
	AccountHolderName string `json:"accountHolderName" validate:"min=2"`
	Status            string `json:"status" validate:"omitempty,oneof=pending submitted approved rejected blocked"`
}

func (ManagerForm) Entity() string { return "Hotel manager" }

func (f ManagerForm) Success(edit bool) string { return saved(f.Entity(), edit, "added") }

func (ManagerForm) messages() map[string]string {
	return withStatus(map[string]string{
		"name":              "Name must be at least 2 characters",
		"mobile":            "Valid mobile number is required",
		"email":             "Valid email is required",
		"hotelName":         "Hotel name is required",
		"businessLicense":   "Business license is required",
		"address":           "Address is required",
		"city":              "City is required",
		"locality":          "Locality is required",
		"pincode":           "Valid pincode is required",
		"totalRooms":        "Total rooms is required",
		"standardRoomPrice": "Standard room price is required",
		"luxuryRoomPrice":   "Luxury room price is required",
		"checkinTime":       "Check-in time is required",
		"checkoutTime":      "Check-out time is required",
		"bankName":          "Bank name is required",
		"accountNumber":     "Account number is required",
		"accountHolderName": "Account holder name is required",
	})
}

func saved(entity string, edit bool, created string) string {
	if edit {
		return entity + " updated successfully"
	}
	return entity + " " + created + " successfully"
}
