package catalog

import (
	"strconv"

	"travelconsole/internal/domain/models"
	"travelconsole/internal/repositories"
	"travelconsole/internal/table"
	"travelconsole/internal/utils"
)

func col[R any](key, header string, cell func(R) string) table.Column[R] {
	return table.Column[R]{Key: key, Header: header, Cell: cell, Sortable: true}
}

func actions[R any]() table.Column[R] {
	return table.Column[R]{Key: "actions", Header: "Actions"}
}

func opts(placeholder string, rowsPerPage []int) table.Options {
	return table.Options{
		RowsPerPageOptions: rowsPerPage,
		SearchPlaceholder:  placeholder,
		AllowCSVExport:     true,
		AllowPDFExport:     true,
	}
}

func amount(v int64) string { return utils.FormatINR(float64(v)) }

func status(s string) string { return utils.Capitalize(s) }

func activeLabel(b bool) string {
	if b {
		return "Active"
	}
	return "Inactive"
}

func buildTables(store *repositories.Store, rows []int) []Table {
	return []Table{
		busOperators(store, rows),
		busBookings(store, rows),
		hotelManagers(store, rows),
		hotelBookings(store, rows),
		drivers("taxi-drivers", "Taxi Drivers", "taxi", "/taxi-management/drivers/", "Search taxi drivers...", store.TaxiDrivers, rows),
		taxiBookings(store, rows),
		drivers("bike-riders", "Bike Riders", "bike", "/bike-management/riders/", "Search bike riders...", store.BikeRiders, rows),
		bikeBookings(store, rows),
		customers(store, rows),
		customerBookings(store, rows),
		users(store, rows),
		coupons(store, rows),
		commissions(store, rows),
		walletTransactions(store, rows),
		walletRules(store, rows),
		notifications(store, rows),
	}
}

func busOperators(store *repositories.Store, rows []int) Table {
	type R = models.BusOperator
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("name", "Name", func(r R) string { return r.Name }),
			col("mobile", "Mobile", func(r R) string { return r.Mobile }),
			col("email", "Email", func(r R) string { return r.Email }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			col("busCount", "Buses", func(r R) string { return strconv.Itoa(r.BusCount) }),
			actions[R](),
		},
	}
	return newEntry("bus-operators", "Bus Operators", "bus", schema, opts("Search bus operators...", rows),
		store.BusOperators, func(r R) string { return "/bus-management/operators/" + r.ID })
}

func busBookings(store *repositories.Store, rows []int) Table {
	type R = models.BusBooking
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("busRegNumber", "Bus Reg. No.", func(r R) string { return r.BusRegNumber }),
			col("customerName", "Customer", func(r R) string { return r.CustomerName }),
			col("phone", "Phone", func(r R) string { return r.Phone }),
			col("from", "From", func(r R) string { return r.From }),
			col("to", "To", func(r R) string { return r.To }),
			col("journeyDate", "Journey Date", func(r R) string { return r.JourneyDate }),
			col("amount", "Amount", func(r R) string { return amount(r.Amount) }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			actions[R](),
		},
	}
	return newEntry("bus-bookings", "Bus Bookings", "bus", schema, opts("Search bus bookings...", rows),
		store.BusBookings, func(r R) string { return "/bus-management/bookings/" + r.ID })
}

func hotelManagers(store *repositories.Store, rows []int) Table {
	type R = models.HotelManager
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("name", "Name", func(r R) string { return r.Name }),
			col("mobile", "Mobile", func(r R) string { return r.Mobile }),
			col("email", "Email", func(r R) string { return r.Email }),
			col("hotelName", "Hotel Name", func(r R) string { return r.HotelName }),
			col("location", "Location", func(r R) string { return r.Location }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			actions[R](),
		},
	}
	return newEntry("hotel-managers", "Hotel Managers", "hotel", schema, opts("Search hotel managers...", rows),
		store.HotelManagers, func(r R) string { return "/hotel-management/managers/" + r.ID })
}

func hotelBookings(store *repositories.Store, rows []int) Table {
	type R = models.HotelBooking
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("hotelId", "Hotel ID", func(r R) string { return r.HotelID }),
			col("hotelName", "Hotel Name", func(r R) string { return r.HotelName }),
			col("customerName", "Customer", func(r R) string { return r.CustomerName }),
			col("phone", "Phone", func(r R) string { return r.Phone }),
			col("checkInDate", "Check-in Date", func(r R) string { return r.CheckInDate }),
			col("checkOutDate", "Check-out Date", func(r R) string { return r.CheckOutDate }),
			col("amount", "Amount", func(r R) string { return amount(r.Amount) }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			actions[R](),
		},
	}
	return newEntry("hotel-bookings", "Hotel Bookings", "hotel", schema, opts("Search hotel bookings...", rows),
		store.HotelBookings, func(r R) string { return "/hotel-management/bookings/" + r.ID })
}

func drivers(slug, title, service, detail, placeholder string, src repositories.Source[models.Driver], rows []int) Table {
	type R = models.Driver
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("name", "Name", func(r R) string { return r.Name }),
			col("mobile", "Mobile", func(r R) string { return r.Mobile }),
			col("email", "Email", func(r R) string { return r.Email }),
			col("vehicleRegNumber", "Vehicle Reg. No.", func(r R) string { return r.VehicleRegNumber }),
			col("experience", "Experience", func(r R) string { return r.Experience }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			actions[R](),
		},
	}
	return newEntry(slug, title, service, schema, opts(placeholder, rows), src,
		func(r R) string { return detail + r.ID })
}

func taxiBookings(store *repositories.Store, rows []int) Table {
	type R = models.TaxiBooking
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("id", "ID", func(r R) string { return r.ID }),
			col("customerName", "Customer", func(r R) string { return r.CustomerName }),
			col("driverName", "Driver", func(r R) string { return r.DriverName }),
			col("from", "From", func(r R) string { return r.From }),
			col("to", "To", func(r R) string { return r.To }),
			col("rideDate", "Ride Date", func(r R) string { return r.RideDate }),
			col("vehicleType", "Vehicle Type", func(r R) string { return r.VehicleType }),
			col("amount", "Amount", func(r R) string { return amount(r.Amount) }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			actions[R](),
		},
	}
	return newEntry("taxi-bookings", "Taxi Bookings", "taxi", schema, opts("Search taxi bookings...", rows),
		store.TaxiBookings, func(r R) string { return "/taxi-management/bookings/" + r.ID })
}

func bikeBookings(store *repositories.Store, rows []int) Table {
	type R = models.BikeBooking
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("id", "ID", func(r R) string { return r.ID }),
			col("customerName", "Customer", func(r R) string { return r.CustomerName }),
			col("riderName", "Rider", func(r R) string { return r.RiderName }),
			col("from", "From", func(r R) string { return r.From }),
			col("to", "To", func(r R) string { return r.To }),
			col("rideDate", "Ride Date", func(r R) string { return r.RideDate }),
			col("vehicleType", "Vehicle Type", func(r R) string { return r.VehicleType }),
			col("amount", "Amount", func(r R) string { return amount(r.Amount) }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			actions[R](),
		},
	}
	return newEntry("bike-bookings", "Bike Bookings", "bike", schema, opts("Search bike bookings...", rows),
		store.BikeBookings, func(r R) string { return "/bike-management/bookings/" + r.ID })
}

func customers(store *repositories.Store, rows []int) Table {
	type R = models.Customer
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("name", "Name", func(r R) string { return r.Name }),
			col("mobile", "Mobile", func(r R) string { return r.Mobile }),
			col("email", "Email", func(r R) string { return r.Email }),
			col("totalBookings", "Total Bookings", func(r R) string { return strconv.Itoa(r.TotalBookings) }),
			col("lastBooking", "Last Booking", func(r R) string { return r.LastBooking }),
			col("joinedDate", "Joined Date", func(r R) string { return r.JoinedDate }),
			actions[R](),
		},
	}
	return newEntry("customers", "Customers", "customer", schema, opts("Search customers...", rows),
		store.Customers, func(r R) string { return "/customer-management/customers/" + r.ID })
}

func customerBookings(store *repositories.Store, rows []int) Table {
	type R = models.CustomerBooking
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("id", "Booking ID", func(r R) string { return r.ID }),
			col("type", "Type", func(r R) string { return utils.Capitalize(r.Type) }),
			col("date", "Date", func(r R) string { return r.Date }),
			// "details" is derived, so sorting on it leaves the order unchanged
			col("details", "Details", R.Details),
			col("amount", "Amount", func(r R) string { return amount(r.Amount) }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			actions[R](),
		},
	}
	return newEntry("customer-bookings", "Customer Bookings", "customer", schema, opts("Search bookings...", rows),
		store.CustomerBookings, func(r R) string { return "/" + r.Type + "-management/bookings/" + r.ID })
}

func users(store *repositories.Store, rows []int) Table {
	type R = models.User
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("name", "Name", func(r R) string { return r.Name }),
			col("email", "Email", func(r R) string { return r.Email }),
			col("role", "Role", func(r R) string { return utils.Capitalize(r.Role) }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			col("lastLogin", "Last Login", func(r R) string { return r.LastLogin }),
			actions[R](),
		},
	}
	return newEntry("users", "Users", "user", schema, opts("Search users...", rows),
		store.Users, func(r R) string { return "/user-management/users/" + r.ID })
}

func coupons(store *repositories.Store, rows []int) Table {
	type R = models.Coupon
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("name", "Name", func(r R) string { return r.Name }),
			col("code", "Code", func(r R) string { return r.Code }),
			col("serviceType", "Service Type", func(r R) string { return r.ServiceType }),
			col("discountValue", "Discount", func(r R) string {
				v := strconv.FormatFloat(r.DiscountValue, 'f', -1, 64)
				if r.DiscountType == "Percentage" {
					return v + "%"
				}
				return "₹" + v
			}),
			col("duration", "Duration", func(r R) string { return r.StartDate + " to " + r.ExpiryDate }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			actions[R](),
		},
	}
	return newEntry("coupons", "Coupons", "coupon", schema, opts("Search coupons...", rows),
		store.Coupons, func(r R) string { return "/coupons/" + r.ID })
}

func commissions(store *repositories.Store, rows []int) Table {
	type R = models.Commission
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("serviceType", "Service Type", func(r R) string { return r.ServiceType }),
			col("commissionType", "Commission Type", func(r R) string { return r.CommissionType }),
			col("commissionValue", "Commission Value", func(r R) string {
				v := strconv.FormatFloat(r.CommissionValue, 'f', -1, 64)
				if r.CommissionType == "Percentage" {
					return v + "%"
				}
				return "₹" + v
			}),
			col("startDate", "Start Date", func(r R) string { return r.StartDate }),
			col("endDate", "End Date", func(r R) string {
				if r.EndDate == nil {
					return "Ongoing"
				}
				return *r.EndDate
			}),
			col("status", "Status", func(r R) string { return activeLabel(r.IsActive) }),
			actions[R](),
		},
	}
	return newEntry("commissions", "Commission Rules", "commission", schema, opts("Search commission rules...", rows),
		store.Commissions, nil)
}

func walletTransactions(store *repositories.Store, rows []int) Table {
	type R = models.WalletTransaction
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("userName", "User Name", func(r R) string { return r.UserName }),
			col("userType", "User Type", func(r R) string { return r.UserType }),
			col("amount", "Amount", func(r R) string { return utils.FormatINRFixed(r.Amount) }),
			col("type", "Type", func(r R) string { return utils.Capitalize(r.Type) }),
			col("description", "Description", func(r R) string { return r.Description }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			col("timestamp", "Timestamp", func(r R) string { return r.Timestamp }),
			actions[R](),
		},
	}
	return newEntry("wallet-transactions", "Wallet Transactions", "wallet", schema, opts("Search transactions...", rows),
		store.WalletTransactions, nil)
}

func walletRules(store *repositories.Store, rows []int) Table {
	type R = models.WalletRule
	money := func(v float64) string { return utils.FormatINR(v) }
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("userType", "User Type", func(r R) string { return r.UserType }),
			col("withdrawalLimit", "Daily Limit", func(r R) string { return money(r.WithdrawalLimit) }),
			col("minWithdrawal", "Min Withdrawal", func(r R) string { return money(r.MinWithdrawal) }),
			col("maxWithdrawal", "Max Withdrawal", func(r R) string { return money(r.MaxWithdrawal) }),
			col("isActive", "Status", func(r R) string { return activeLabel(r.IsActive) }),
			actions[R](),
		},
	}
	return newEntry("wallet-rules", "Wallet Rules", "wallet", schema, opts("Search rules...", rows),
		store.WalletRules, nil)
}

func notifications(store *repositories.Store, rows []int) Table {
	type R = models.Notification
	schema := table.Schema[R]{
		ID:     func(r R) string { return r.ID },
		Fields: R.Fields,
		Columns: []table.Column[R]{
			col("title", "Title", func(r R) string { return r.Title }),
			col("message", "Message", func(r R) string { return r.Message }),
			col("recipientType", "Recipients", func(r R) string { return r.RecipientType }),
			col("recipients", "Count", func(r R) string { return strconv.Itoa(r.Recipients) }),
			col("status", "Status", func(r R) string { return status(r.Status) }),
			col("dateInfo", "Date", func(r R) string {
				if r.Status == "scheduled" && r.ScheduledFor != nil {
					return "Created: " + r.CreatedAt + " / Scheduled: " + *r.ScheduledFor
				}
				return r.CreatedAt
			}),
			actions[R](),
		},
	}
	return newEntry("notifications", "Notifications", "notification", schema, opts("Search notifications...", rows),
		store.Notifications, nil)
}
