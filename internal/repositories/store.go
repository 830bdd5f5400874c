package repositories

import (
	"database/sql"

	"travelconsole/internal/domain/models"
)

// Store groups one source per console entity.
type Store struct {
	Kind string

	BusOperators       Source[models.BusOperator]
	BusBookings        Source[models.BusBooking]
	HotelManagers      Source[models.HotelManager]
	HotelBookings      Source[models.HotelBooking]
	TaxiDrivers        Source[models.Driver]
	TaxiBookings       Source[models.TaxiBooking]
	BikeRiders         Source[models.Driver]
	BikeBookings       Source[models.BikeBooking]
	Customers          Source[models.Customer]
	CustomerBookings   Source[models.CustomerBooking]
	Users              Source[models.User]
	Coupons            Source[models.Coupon]
	Commissions        Source[models.Commission]
	WalletTransactions Source[models.WalletTransaction]
	WalletRules        Source[models.WalletRule]
	Notifications      Source[models.Notification]
}

// NewMemoryStore serves the built-in sample records. Commission rules are writable.
func NewMemoryStore() *Store {
	return &Store{
		Kind:               "memory",
		BusOperators:       NewMemorySource("bus operator", func(r models.BusOperator) string { return r.ID }, sampleBusOperators),
		BusBookings:        NewMemorySource("bus booking", func(r models.BusBooking) string { return r.ID }, sampleBusBookings),
		HotelManagers:      NewMemorySource("hotel manager", func(r models.HotelManager) string { return r.ID }, sampleHotelManagers),
		HotelBookings:      NewMemorySource("hotel booking", func(r models.HotelBooking) string { return r.ID }, sampleHotelBookings),
		TaxiDrivers:        NewMemorySource("taxi driver", driverID, sampleTaxiDrivers),
		TaxiBookings:       NewMemorySource("taxi booking", func(r models.TaxiBooking) string { return r.ID }, sampleTaxiBookings),
		BikeRiders:         NewMemorySource("bike rider", driverID, sampleBikeRiders),
		BikeBookings:       NewMemorySource("bike booking", func(r models.BikeBooking) string { return r.ID }, sampleBikeBookings),
		Customers:          NewMemorySource("customer", func(r models.Customer) string { return r.ID }, sampleCustomers),
		CustomerBookings:   NewMemorySource("customer booking", func(r models.CustomerBooking) string { return r.ID }, sampleCustomerBookings),
		Users:              NewMemorySource("user", func(r models.User) string { return r.ID }, sampleUsers),
		Coupons:            NewMemorySource("coupon", func(r models.Coupon) string { return r.ID }, sampleCoupons),
		Commissions:        NewMemorySource("commission rule", func(r models.Commission) string { return r.ID }, sampleCommissions),
		WalletTransactions: NewMemorySource("wallet transaction", func(r models.WalletTransaction) string { return r.ID }, sampleWalletTransactions),
		WalletRules:        NewMemorySource("wallet rule", func(r models.WalletRule) string { return r.ID }, sampleWalletRules),
		Notifications:      NewMemorySource("notification", func(r models.Notification) string { return r.ID }, sampleNotifications),
	}
}

func driverID(d models.Driver) string { return d.ID }

// NewSQLStore reads every entity from MySQL. All sources are read-only.
func NewSQLStore(db *sql.DB) *Store {
	return &Store{
		Kind: "mysql",
		BusOperators: SQLSource[models.BusOperator]{
			DB: db, Table: "bus_operators", Resource: "bus operator",
			Columns: cols(text("id"), text("name"), text("mobile"), text("email"), text("status"), num("bus_count")),
			Decode: func(r SQLRow) models.BusOperator {
				return models.BusOperator{ID: r.Str("id"), Name: r.Str("name"), Mobile: r.Str("mobile"), Email: r.Str("email"), Status: r.Str("status"), BusCount: r.Int("bus_count")}
			},
		},
		BusBookings: SQLSource[models.BusBooking]{
			DB: db, Table: "bus_bookings", Resource: "bus booking",
			Columns: cols(text("id"), text("bus_reg_number"), text("customer_name"), text("phone"), text("email"),
				text("route_from"), text("route_to"), text("journey_date"), num("amount"), text("status")),
			Decode: func(r SQLRow) models.BusBooking {
				return models.BusBooking{
					ID: r.Str("id"), BusRegNumber: r.Str("bus_reg_number"), CustomerName: r.Str("customer_name"),
					Phone: r.Str("phone"), Email: r.Str("email"), From: r.Str("route_from"), To: r.Str("route_to"),
					JourneyDate: r.Str("journey_date"), Amount: r.Int64("amount"), Status: r.Str("status"),
				}
			},
		},
		HotelManagers: SQLSource[models.HotelManager]{
			DB: db, Table: "hotel_managers", Resource: "hotel manager",
			Columns: cols(text("id"), text("name"), text("mobile"), text("email"), text("hotel_name"), text("location"), text("status")),
			Decode: func(r SQLRow) models.HotelManager {
				return models.HotelManager{
					ID: r.Str("id"), Name: r.Str("name"), Mobile: r.Str("mobile"), Email: r.Str("email"),
					HotelName: r.Str("hotel_name"), Location: r.Str("location"), Status: r.Str("status"),
				}
			},
		},
		HotelBookings: SQLSource[models.HotelBooking]{
			DB: db, Table: "hotel_bookings", Resource: "hotel booking",
			Columns: cols(text("id"), text("hotel_id"), text("hotel_name"), text("customer_name"), text("phone"), text("email"),
				text("check_in_date"), text("check_out_date"), text("room_type"), num("guests"), num("amount"), text("status")),
			Decode: func(r SQLRow) models.HotelBooking {
				return models.HotelBooking{
					ID: r.Str("id"), HotelID: r.Str("hotel_id"), HotelName: r.Str("hotel_name"), CustomerName: r.Str("customer_name"),
					Phone: r.Str("phone"), Email: r.Str("email"), CheckInDate: r.Str("check_in_date"), CheckOutDate: r.Str("check_out_date"),
					RoomType: r.Str("room_type"), Guests: r.Int("guests"), Amount: r.Int64("amount"), Status: r.Str("status"),
				}
			},
		},
		TaxiDrivers: driverSource(db, "taxi_drivers", "taxi driver"),
		TaxiBookings: SQLSource[models.TaxiBooking]{
			DB: db, Table: "taxi_bookings", Resource: "taxi booking",
			Columns: cols(text("id"), text("customer_name"), text("driver_name"), text("route_from"), text("route_to"),
				text("ride_date"), text("vehicle_type"), num("amount"), text("status")),
			Decode: func(r SQLRow) models.TaxiBooking {
				return models.TaxiBooking{
					ID: r.Str("id"), CustomerName: r.Str("customer_name"), DriverName: r.Str("driver_name"),
					From: r.Str("route_from"), To: r.Str("route_to"), RideDate: r.Str("ride_date"),
					VehicleType: r.Str("vehicle_type"), Amount: r.Int64("amount"), Status: r.Str("status"),
				}
			},
		},
		BikeRiders: driverSource(db, "bike_riders", "bike rider"),
		BikeBookings: SQLSource[models.BikeBooking]{
			DB: db, Table: "bike_bookings", Resource: "bike booking",
			Columns: cols(text("id"), text("customer_name"), text("rider_name"), text("route_from"), text("route_to"),
				text("ride_date"), text("vehicle_type"), num("amount"), text("status")),
			Decode: func(r SQLRow) models.BikeBooking {
				return models.BikeBooking{
					ID: r.Str("id"), CustomerName: r.Str("customer_name"), RiderName: r.Str("rider_name"),
					From: r.Str("route_from"), To: r.Str("route_to"), RideDate: r.Str("ride_date"),
					VehicleType: r.Str("vehicle_type"), Amount: r.Int64("amount"), Status: r.Str("status"),
				}
			},
		},
		Customers: SQLSource[models.Customer]{
			DB: db, Table: "customers", Resource: "customer",
			Columns: cols(text("id"), text("name"), text("mobile"), text("email"), num("total_bookings"), text("last_booking"), text("joined_date")),
			Decode: func(r SQLRow) models.Customer {
				return models.Customer{
					ID: r.Str("id"), Name: r.Str("name"), Mobile: r.Str("mobile"), Email: r.Str("email"),
					TotalBookings: r.Int("total_bookings"), LastBooking: r.Str("last_booking"), JoinedDate: r.Str("joined_date"),
				}
			},
		},
		CustomerBookings: SQLSource[models.CustomerBooking]{
			DB: db, Table: "customer_bookings", Resource: "customer booking",
			Columns: cols(text("id"), text("customer_id"), text("type"), text("date"), opt("source"), opt("destination"),
				opt("hotel_name"), num("amount"), text("status")),
			Decode: func(r SQLRow) models.CustomerBooking {
				return models.CustomerBooking{
					ID: r.Str("id"), CustomerID: r.Str("customer_id"), Type: r.Str("type"), Date: r.Str("date"),
					Source: r.OptStr("source"), Destination: r.OptStr("destination"), HotelName: r.OptStr("hotel_name"),
					Amount: r.Int64("amount"), Status: r.Str("status"),
				}
			},
		},
		Users: SQLSource[models.User]{
			DB: db, Table: "users", Resource: "user",
			Columns: cols(text("id"), text("name"), text("email"), text("role"), text("status"), text("last_login")),
			Decode: func(r SQLRow) models.User {
				return models.User{
					ID: r.Str("id"), Name: r.Str("name"), Email: r.Str("email"), Role: r.Str("role"),
					Status: r.Str("status"), LastLogin: r.Str("last_login"),
				}
			},
		},
		Coupons: SQLSource[models.Coupon]{
			DB: db, Table: "coupons", Resource: "coupon",
			Columns: cols(text("id"), text("name"), text("code"), text("service_type"), text("discount_type"),
				num("discount_value"), text("start_date"), text("expiry_date"), text("status")),
			Decode: func(r SQLRow) models.Coupon {
				return models.Coupon{
					ID: r.Str("id"), Name: r.Str("name"), Code: r.Str("code"), ServiceType: r.Str("service_type"),
					DiscountType: r.Str("discount_type"), DiscountValue: r.Num("discount_value"),
					StartDate: r.Str("start_date"), ExpiryDate: r.Str("expiry_date"), Status: r.Str("status"),
				}
			},
		},
		Commissions: SQLSource[models.Commission]{
			DB: db, Table: "commission_rules", Resource: "commission rule",
			Columns: cols(text("id"), text("service_type"), text("commission_type"), num("commission_value"),
				text("start_date"), opt("end_date"), flag("is_active")),
			Decode: func(r SQLRow) models.Commission {
				return models.Commission{
					ID: r.Str("id"), ServiceType: r.Str("service_type"), CommissionType: r.Str("commission_type"),
					CommissionValue: r.Num("commission_value"), StartDate: r.Str("start_date"),
					EndDate: r.OptStr("end_date"), IsActive: r.Bool("is_active"),
				}
			},
		},
		WalletTransactions: SQLSource[models.WalletTransaction]{
			DB: db, Table: "wallet_transactions", Resource: "wallet transaction",
			Columns: cols(text("id"), text("user_id"), text("user_name"), text("user_type"), num("amount"),
				text("type"), text("description"), text("status"), text("timestamp")),
			Decode: func(r SQLRow) models.WalletTransaction {
				return models.WalletTransaction{
					ID: r.Str("id"), UserID: r.Str("user_id"), UserName: r.Str("user_name"), UserType: r.Str("user_type"),
					Amount: r.Num("amount"), Type: r.Str("type"), Description: r.Str("description"),
					Status: r.Str("status"), Timestamp: r.Str("timestamp"),
				}
			},
		},
		WalletRules: SQLSource[models.WalletRule]{
			DB: db, Table: "wallet_rules", Resource: "wallet rule",
			Columns: cols(text("id"), text("user_type"), num("withdrawal_limit"), num("min_withdrawal"),
				num("max_withdrawal"), flag("is_active")),
			Decode: func(r SQLRow) models.WalletRule {
				return models.WalletRule{
					ID: r.Str("id"), UserType: r.Str("user_type"), WithdrawalLimit: r.Num("withdrawal_limit"),
					MinWithdrawal: r.Num("min_withdrawal"), MaxWithdrawal: r.Num("max_withdrawal"), IsActive: r.Bool("is_active"),
				}
			},
		},
		Notifications: SQLSource[models.Notification]{
			DB: db, Table: "notifications", Resource: "notification",
			Columns: cols(text("id"), text("title"), text("message"), text("recipient_type"), num("recipients"),
				text("status"), text("created_at"), opt("scheduled_for")),
			Decode: func(r SQLRow) models.Notification {
				return models.Notification{
					ID: r.Str("id"), Title: r.Str("title"), Message: r.Str("message"), RecipientType: r.Str("recipient_type"),
					Recipients: r.Int("recipients"), Status: r.Str("status"), CreatedAt: r.Str("created_at"),
					ScheduledFor: r.OptStr("scheduled_for"),
				}
			},
		},
	}
}

func driverSource(db *sql.DB, table, resource string) SQLSource[models.Driver] {
	return SQLSource[models.Driver]{
		DB: db, Table: table, Resource: resource,
		Columns: cols(text("id"), text("name"), text("mobile"), text("email"), text("vehicle_type"),
			text("vehicle_reg_number"), text("experience"), text("status")),
		Decode: func(r SQLRow) models.Driver {
			return models.Driver{
				ID: r.Str("id"), Name: r.Str("name"), Mobile: r.Str("mobile"), Email: r.Str("email"),
				VehicleType: r.Str("vehicle_type"), VehicleRegNumber: r.Str("vehicle_reg_number"),
				Experience: r.Str("experience"), Status: r.Str("status"),
			}
		},
	}
}

func cols(c ...SQLColumn) []SQLColumn { return c }

func text(name string) SQLColumn { return SQLColumn{Name: name, Kind: Text} }
func num(name string) SQLColumn  { return SQLColumn{Name: name, Kind: Number} }
func flag(name string) SQLColumn { return SQLColumn{Name: name, Kind: Flag} }
func opt(name string) SQLColumn  { return SQLColumn{Name: name, Kind: NullableText} }
