package repositories

import "travelconsole/internal/domain/models"

func strPtr(s string) *string { return &s }

var sampleBusOperators = []models.BusOperator{
	{ID: "1", Name: "Global Tours", Mobile: "+91 9876543210", Email: "info@globaltours.com", Status: "approved", BusCount: 12},
	{ID: "2", Name: "City Express", Mobile: "+91 8765432109", Email: "booking@cityexpress.com", Status: "pending", BusCount: 8},
	{ID: "3", Name: "Royal Travels", Mobile: "+91 7654321098", Email: "contact@royaltravels.com", Status: "submitted", BusCount: 15},
	{ID: "4", Name: "Highway Express", Mobile: "+91 6543210987", Email: "info@highwayexpress.com", Status: "rejected", BusCount: 0},
	{ID: "5", Name: "Mountain Movers", Mobile: "+91 5432109876", Email: "bookings@mountainmovers.com", Status: "approved", BusCount: 7},
	{ID: "6", Name: "Deluxe Travels", Mobile: "+91 9876543211", Email: "deluxe@travels.com", Status: "blocked", BusCount: 5},
}

var sampleBusBookings = []models.BusBooking{
	{ID: "BK001", BusRegNumber: "KA-01-AB-1234", CustomerName: "Raj Kumar", Phone: "+91 9876543210", Email: "raj@example.com", From: "Bangalore", To: "Mysore", JourneyDate: "2023-10-15", Amount: 650, Status: "confirmed"},
	{ID: "BK002", BusRegNumber: "KA-02-CD-5678", CustomerName: "Priya Sharma", Phone: "+91 8765432109", Email: "priya@example.com", From: "Mumbai", To: "Pune", JourneyDate: "2023-10-18", Amount: 750, Status: "pending"},
	{ID: "BK003", BusRegNumber: "MH-01-EF-9012", CustomerName: "Amit Singh", Phone: "+91 7654321098", Email: "amit@example.com", From: "Delhi", To: "Jaipur", JourneyDate: "2023-10-20", Amount: 950, Status: "cancelled"},
	{ID: "BK004", BusRegNumber: "DL-01-GH-3456", CustomerName: "Neha Gupta", Phone: "+91 6543210987", Email: "neha@example.com", From: "Chennai", To: "Hyderabad", JourneyDate: "2023-10-25", Amount: 1050, Status: "confirmed"},
	{ID: "BK005", BusRegNumber: "TN-01-IJ-7890", CustomerName: "Karthik R", Phone: "+91 5432109876", Email: "karthik@example.com", From: "Kolkata", To: "Bhubaneswar", JourneyDate: "2023-10-30", Amount: 1200, Status: "completed"},
}

var sampleHotelManagers = []models.HotelManager{
	{ID: "1", Name: "Vikram Singh", Mobile: "9876543210", Email: "vikram@luxehotels.com", HotelName: "Luxe Grand Hotel", Location: "Mumbai", Status: "approved"},
	{ID: "2", Name: "Priya Sharma", Mobile: "8765432109", Email: "priya@sunriseresort.com", HotelName: "Sunrise Resort & Spa", Location: "Goa", Status: "pending"},
	{ID: "3", Name: "Rajesh Kumar", Mobile: "7654321098", Email: "rajesh@citystay.com", HotelName: "City Stay Hotel", Location: "Delhi", Status: "submitted"},
	{ID: "4", Name: "Meena Desai", Mobile: "6543210987", Email: "meena@royalpalace.com", HotelName: "Royal Palace Hotel", Location: "Jaipur", Status: "rejected"},
	{ID: "5", Name: "Anand Patel", Mobile: "5432109876", Email: "anand@greenvalley.com", HotelName: "Green Valley Resort", Location: "Shimla", Status: "approved"},
	{ID: "6", Name: "Sunita Reddy", Mobile: "4321098765", Email: "sunita@beachview.com", HotelName: "Beach View Resort", Location: "Chennai", Status: "blocked"},
}

var sampleHotelBookings = []models.HotelBooking{
	{ID: "HB001", HotelID: "HTL001", HotelName: "Luxe Grand Hotel", CustomerName: "Amit Shah", Phone: "+91 9876543210", Email: "amit@example.com", CheckInDate: "2023-10-15", CheckOutDate: "2023-10-18", RoomType: "Deluxe Room", Guests: 2, Amount: 15000, Status: "confirmed"},
	{ID: "HB002", HotelID: "HTL002", HotelName: "Sunrise Resort & Spa", CustomerName: "Priya Verma", Phone: "+91 8765432109", Email: "priya@example.com", CheckInDate: "2023-10-20", CheckOutDate: "2023-10-25", RoomType: "Luxury Suite", Guests: 3, Amount: 35000, Status: "pending"},
	{ID: "HB003", HotelID: "HTL003", HotelName: "City Stay Hotel", CustomerName: "Rahul Kumar", Phone: "+91 7654321098", Email: "rahul@example.com", CheckInDate: "2023-11-01", CheckOutDate: "2023-11-03", RoomType: "Standard Room", Guests: 1, Amount: 8500, Status: "cancelled"},
	{ID: "HB004", HotelID: "HTL004", HotelName: "Royal Palace Hotel", CustomerName: "Neha Singh", Phone: "+91 6543210987", Email: "neha@example.com", CheckInDate: "2023-11-10", CheckOutDate: "2023-11-15", RoomType: "Presidential Suite", Guests: 2, Amount: 75000, Status: "confirmed"},
	{ID: "HB005", HotelID: "HTL005", HotelName: "Green Valley Resort", CustomerName: "Vikrant Khanna", Phone: "+91 5432109876", Email: "vikrant@example.com", CheckInDate: "2023-10-05", CheckOutDate: "2023-10-10", RoomType: "Mountain View Room", Guests: 4, Amount: 45000, Status: "completed"},
}

var sampleTaxiDrivers = []models.Driver{
	{ID: "1", Name: "Rajesh Kumar", Mobile: "+91 9876543210", Email: "rajesh@example.com", VehicleType: "Car", VehicleRegNumber: "MH-01-AB-1234", Experience: "5 years", Status: "approved"},
	{ID: "2", Name: "Amit Singh", Mobile: "+91 8765432109", Email: "amit@example.com", VehicleType: "Car", VehicleRegNumber: "DL-02-CD-5678", Experience: "3 years", Status: "pending"},
	{ID: "3", Name: "Suresh Sharma", Mobile: "+91 7654321098", Email: "suresh@example.com", VehicleType: "Car", VehicleRegNumber: "KA-03-EF-9012", Experience: "7 years", Status: "approved"},
	{ID: "4", Name: "Pradeep Patel", Mobile: "+91 6543210987", Email: "pradeep@example.com", VehicleType: "Car", VehicleRegNumber: "TN-04-GH-3456", Experience: "2 years", Status: "rejected"},
	{ID: "5", Name: "Vijay Verma", Mobile: "+91 5432109876", Email: "vijay@example.com", VehicleType: "Car", VehicleRegNumber: "GJ-05-IJ-7890", Experience: "4 years", Status: "approved"},
}

var sampleTaxiBookings = []models.TaxiBooking{
	{ID: "TX001", CustomerName: "Arjun Sharma", DriverName: "Rajesh Kumar", From: "Airport Terminal 2", To: "Bandra", RideDate: "2023-10-15", VehicleType: "Sedan", Amount: 550, Status: "confirmed"},
	{ID: "TX002", CustomerName: "Neha Gupta", DriverName: "Amit Singh", From: "Andheri East", To: "BKC", RideDate: "2023-10-16", VehicleType: "SUV", Amount: 750, Status: "completed"},
	{ID: "TX003", CustomerName: "Rahul Mehta", DriverName: "Suresh Sharma", From: "CST Station", To: "Powai", RideDate: "2023-10-17", VehicleType: "Hatchback", Amount: 450, Status: "cancelled"},
	{ID: "TX004", CustomerName: "Priya Patel", DriverName: "Vijay Verma", From: "Lower Parel", To: "Juhu Beach", RideDate: "2023-10-18", VehicleType: "Sedan", Amount: 650, Status: "pending"},
	{ID: "TX005", CustomerName: "Karan Malhotra", DriverName: "Pradeep Patel", From: "Dadar", To: "Nariman Point", RideDate: "2023-10-19", VehicleType: "Premium Sedan", Amount: 950, Status: "confirmed"},
}

var sampleBikeRiders = []models.Driver{
	{ID: "1", Name: "Rohit Sharma", Mobile: "+91 9876543210", Email: "rohit@example.com", VehicleType: "Bike", VehicleRegNumber: "MH-01-AB-5678", Experience: "3 years", Status: "approved"},
	{ID: "2", Name: "Vikas Patel", Mobile: "+91 8765432109", Email: "vikas@example.com", VehicleType: "Bike", VehicleRegNumber: "DL-02-CD-8765", Experience: "2 years", Status: "pending"},
	{ID: "3", Name: "Mahesh Kumar", Mobile: "+91 7654321098", Email: "mahesh@example.com", VehicleType: "Bike", VehicleRegNumber: "KA-03-EF-4321", Experience: "4 years", Status: "approved"},
	{ID: "4", Name: "Nilesh Jain", Mobile: "+91 6543210987", Email: "nilesh@example.com", VehicleType: "Bike", VehicleRegNumber: "TN-04-GH-7654", Experience: "1 year", Status: "rejected"},
	{ID: "5", Name: "Rakesh Singh", Mobile: "+91 5432109876", Email: "rakesh@example.com", VehicleType: "Bike", VehicleRegNumber: "GJ-05-IJ-5432", Experience: "5 years", Status: "approved"},
}

var sampleBikeBookings = []models.BikeBooking{
	{ID: "BK001", CustomerName: "Ankit Gupta", RiderName: "Rohit Sharma", From: "Andheri East", To: "Bandra West", RideDate: "2023-10-15", VehicleType: "Standard", Amount: 150, Status: "confirmed"},
	{ID: "BK002", CustomerName: "Nisha Verma", RiderName: "Vikas Patel", From: "Powai", To: "Kurla", RideDate: "2023-10-16", VehicleType: "Premium", Amount: 220, Status: "completed"},
	{ID: "BK003", CustomerName: "Sanjay Kumar", RiderName: "Mahesh Kumar", From: "Dadar", To: "Worli", RideDate: "2023-10-17", VehicleType: "Standard", Amount: 180, Status: "cancelled"},
	{ID: "BK004", CustomerName: "Preeti Singh", RiderName: "Rakesh Singh", From: "CST", To: "Churchgate", RideDate: "2023-10-18", VehicleType: "Standard", Amount: 120, Status: "pending"},
	{ID: "BK005", CustomerName: "Deepak Shah", RiderName: "Nilesh Jain", From: "Juhu", To: "Santacruz", RideDate: "2023-10-19", VehicleType: "Premium", Amount: 200, Status: "confirmed"},
}

var sampleCustomers = []models.Customer{
	{ID: "1", Name: "Rahul Sharma", Mobile: "+91 9876543210", Email: "rahul@example.com", TotalBookings: 12, LastBooking: "2023-10-10", JoinedDate: "2022-05-15"},
	{ID: "2", Name: "Priya Patel", Mobile: "+91 8765432109", Email: "priya@example.com", TotalBookings: 8, LastBooking: "2023-10-05", JoinedDate: "2022-06-22"},
	{ID: "3", Name: "Amit Kumar", Mobile: "+91 7654321098", Email: "amit@example.com", TotalBookings: 15, LastBooking: "2023-10-12", JoinedDate: "2022-04-10"},
	{ID: "4", Name: "Neha Singh", Mobile: "+91 6543210987", Email: "neha@example.com", TotalBookings: 5, LastBooking: "2023-09-28", JoinedDate: "2022-07-30"},
	{ID: "5", Name: "Deepak Verma", Mobile: "+91 5432109876", Email: "deepak@example.com", TotalBookings: 20, LastBooking: "2023-10-15", JoinedDate: "2022-03-05"},
}

var sampleCustomerBookings = []models.CustomerBooking{
	{ID: "BUS001", CustomerID: "1", Type: "bus", Date: "2023-10-10", Source: strPtr("Mumbai"), Destination: strPtr("Pune"), Amount: 650, Status: "completed"},
	{ID: "HTL001", CustomerID: "1", Type: "hotel", Date: "2023-09-15", HotelName: strPtr("Luxe Grand Hotel"), Amount: 12500, Status: "completed"},
	{ID: "TX001", CustomerID: "1", Type: "taxi", Date: "2023-08-22", Source: strPtr("Airport"), Destination: strPtr("City Center"), Amount: 750, Status: "completed"},
	{ID: "BK001", CustomerID: "1", Type: "bike", Date: "2023-07-05", Source: strPtr("Andheri"), Destination: strPtr("Bandra"), Amount: 150, Status: "completed"},
	{ID: "BUS002", CustomerID: "1", Type: "bus", Date: "2023-10-25", Source: strPtr("Mumbai"), Destination: strPtr("Nagpur"), Amount: 1200, Status: "confirmed"},
}

var sampleUsers = []models.User{
	{ID: "1", Name: "Admin User", Email: "admin@swifttravel.com", Role: "admin", Status: "approved", LastLogin: "2023-10-15 10:30 AM"},
	{ID: "2", Name: "Manager User", Email: "manager@swifttravel.com", Role: "manager", Status: "approved", LastLogin: "2023-10-14 02:45 PM"},
	{ID: "3", Name: "Subadmin User", Email: "subadmin@swifttravel.com", Role: "subadmin", Status: "rejected", LastLogin: "2023-10-10 09:15 AM"},
}

var sampleCoupons = []models.Coupon{
	{ID: "1", Name: "Welcome Discount", Code: "WELCOME20", ServiceType: "All Services", DiscountType: "Percentage", DiscountValue: 20, StartDate: "2023-10-01", ExpiryDate: "2023-12-31", Status: "active"},
	{ID: "2", Name: "Hotel Special", Code: "HOTEL100", ServiceType: "Hotel Booking", DiscountType: "Fixed", DiscountValue: 100, StartDate: "2023-10-15", ExpiryDate: "2023-11-15", Status: "active"},
	{ID: "3", Name: "Weekend Rides", Code: "WEEKEND15", ServiceType: "Taxi Booking", DiscountType: "Percentage", DiscountValue: 15, StartDate: "2023-11-01", ExpiryDate: "2023-11-30", Status: "upcoming"},
	{ID: "4", Name: "Summer Discount", Code: "SUMMER25", ServiceType: "All Services", DiscountType: "Percentage", DiscountValue: 25, StartDate: "2023-04-01", ExpiryDate: "2023-06-30", Status: "expired"},
}

var sampleCommissions = []models.Commission{
	{ID: "1", ServiceType: "Bus Booking", CommissionType: "Percentage", CommissionValue: 5, StartDate: "2023-10-01", EndDate: strPtr("2023-12-31"), IsActive: true},
	{ID: "2", ServiceType: "Hotel Booking", CommissionType: "Fixed", CommissionValue: 100, StartDate: "2023-10-05", EndDate: nil, IsActive: true},
	{ID: "3", ServiceType: "Taxi Booking", CommissionType: "Percentage", CommissionValue: 10, StartDate: "2023-11-01", EndDate: strPtr("2024-01-31"), IsActive: false},
	{ID: "4", ServiceType: "Bike Booking", CommissionType: "Fixed", CommissionValue: 50, StartDate: "2023-10-15", EndDate: strPtr("2023-11-30"), IsActive: true},
}

var sampleWalletTransactions = []models.WalletTransaction{
	{ID: "1", UserID: "USR001", UserName: "Rahul Sharma", UserType: "customer", Amount: 1000, Type: "credit", Description: "Wallet recharge", Status: "success", Timestamp: "2023-10-15 10:30 AM"},
	{ID: "2", UserID: "USR002", UserName: "Priya Patel", UserType: "customer", Amount: 500, Type: "debit", Description: "Booking payment", Status: "success", Timestamp: "2023-10-14 02:45 PM"},
	{ID: "3", UserID: "DRV001", UserName: "Amit Kumar", UserType: "driver", Amount: 750, Type: "credit", Description: "Ride payment", Status: "success", Timestamp: "2023-10-14 05:15 PM"},
	{ID: "4", UserID: "DRV001", UserName: "Amit Kumar", UserType: "driver", Amount: 500, Type: "debit", Description: "Withdrawal request", Status: "pending", Timestamp: "2023-10-15 11:20 AM"},
	{ID: "5", UserID: "MGR001", UserName: "Neha Singh", UserType: "hotel_manager", Amount: 2000, Type: "credit", Description: "Hotel booking payment", Status: "success", Timestamp: "2023-10-13 09:15 AM"},
	{ID: "6", UserID: "MGR001", UserName: "Neha Singh", UserType: "hotel_manager", Amount: 1500, Type: "debit", Description: "Withdrawal request", Status: "failed", Timestamp: "2023-10-15 03:45 PM"},
}

var sampleWalletRules = []models.WalletRule{
	{ID: "1", UserType: "Driver", WithdrawalLimit: 5000, MinWithdrawal: 500, MaxWithdrawal: 10000, IsActive: true},
	{ID: "2", UserType: "Bus Operator", WithdrawalLimit: 10000, MinWithdrawal: 1000, MaxWithdrawal: 50000, IsActive: true},
	{ID: "3", UserType: "Hotel Manager", WithdrawalLimit: 15000, MinWithdrawal: 2000, MaxWithdrawal: 100000, IsActive: true},
	{ID: "4", UserType: "Bike Rider", WithdrawalLimit: 3000, MinWithdrawal: 300, MaxWithdrawal: 5000, IsActive: false},
}

var sampleNotifications = []models.Notification{
	{ID: "1", Title: "Weekend Discount", Message: "Enjoy 20% off on all taxi bookings this weekend!", RecipientType: "All Customers", Recipients: 5420, Status: "sent", CreatedAt: "2023-10-12 09:30 AM"},
	{ID: "2", Title: "New Feature Announcement", Message: "Now you can book hotels directly from our app!", RecipientType: "All Users", Recipients: 8750, Status: "sent", CreatedAt: "2023-10-10 02:15 PM"},
	{ID: "3", Title: "Driver Onboarding", Message: "Complete your profile to start accepting ride requests", RecipientType: "New Drivers", Recipients: 120, Status: "sent", CreatedAt: "2023-10-08 11:45 AM"},
	{ID: "4", Title: "Diwali Special Offer", Message: "Special discounts on all services during Diwali!", RecipientType: "All Users", Recipients: 9000, Status: "scheduled", CreatedAt: "2023-10-15 10:00 AM", ScheduledFor: strPtr("2023-10-20 08:00 AM")},
}
