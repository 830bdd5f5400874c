package forms

import (
	"travelconsole/internal/utils"

	"github.com/go-playground/validator/v10"
)

// UserForm edits a console account. Password is optional on edit.
type UserForm struct {
	Name     string `json:"name" validate:"min=2"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager subadmin"`
	Status   string `json:"status" validate:"omitempty,oneof=approved pending rejected"`
}

func (UserForm) Entity() string { return "User" }

func (f UserForm) Success(edit bool) string { return saved(f.Entity(), edit, "added") }

func (UserForm) messages() map[string]string {
	return map[string]string{
		"name":     "Name must be at least 2 characters",
		"email":    "Valid email is required",
		"password": "Password must be at least 8 characters",
		"role":     "Role must be admin, manager or subadmin",
	}
}

type CouponForm struct {
	Name          string  `json:"name" validate:"min=2"`
	Code          string  `json:"code" validate:"min=3"`
	ServiceType   string  `json:"serviceType"`
	DiscountType  string  `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue float64 `json:"discountValue" validate:"gte=1"`
	StartDate     string  `json:"startDate" validate:"required,date"`
	ExpiryDate    string  `json:"expiryDate" validate:"required,date"`
}

func (CouponForm) Entity() string { return "Coupon" }

func (f CouponForm) Success(edit bool) string { return saved(f.Entity(), edit, "created") }

func (CouponForm) messages() map[string]string {
	return map[string]string{
		"name":             "Name must be at least 2 characters",
		"code":             "Code must be at least 3 characters",
		"discountValue":    "Discount value must be greater than 0",
		"startDate":        "Start date is required",
		"expiryDate":       "Expiry date is required",
		"expiryDate.after": "Expiry date must be on or after the start date",
	}
}

func couponDates(sl validator.StructLevel) {
	f := sl.Current().Interface().(CouponForm)
	if before(f.ExpiryDate, f.StartDate) {
		sl.ReportError(f.ExpiryDate, "expiryDate", "ExpiryDate", "after", "startDate")
	}
}

// CommissionForm carries form values ("bus_booking", "percentage"); the service maps them to labels.
type CommissionForm struct {
	ServiceType     string  `json:"serviceType" validate:"oneof=bus_booking hotel_booking taxi_booking bike_booking"`
	CommissionType  string  `json:"commissionType" validate:"oneof=percentage fixed"`
	CommissionValue float64 `json:"commissionValue" validate:"gte=0"`
	StartDate       string  `json:"startDate" validate:"required,date"`
	EndDate         string  `json:"endDate,omitempty" validate:"omitempty,date"`
	IsActive        bool    `json:"isActive"`
}

func (CommissionForm) Entity() string { return "Commission rule" }

func (f CommissionForm) Success(edit bool) string { return saved(f.Entity(), edit, "added") }

func (CommissionForm) messages() map[string]string {
	return map[string]string{
		"serviceType":     "Select a service type",
		"commissionType":  "Select a commission type",
		"commissionValue": "Commission value cannot be negative",
		"startDate":       "Start date is required",
		"endDate.after":   "End date must be on or after the start date",
	}
}

func commissionDates(sl validator.StructLevel) {
	f := sl.Current().Interface().(CommissionForm)
	if f.EndDate != "" && before(f.EndDate, f.StartDate) {
		sl.ReportError(f.EndDate, "endDate", "EndDate", "after", "startDate")
	}
}

type NotificationForm struct {
	Title         string `json:"title" validate:"min=3"`
	Message       string `json:"message" validate:"min=10"`
	RecipientType string `json:"recipientType"`
	ScheduleType  string `json:"scheduleType" validate:"omitempty,oneof=immediate scheduled"`
	ScheduledDate string `json:"scheduledDate,omitempty" validate:"omitempty,date"`
	SendEmail     bool   `json:"sendEmail"`
	SendPush      bool   `json:"sendPush"`
	SendSMS       bool   `json:"sendSMS"`
}

func (NotificationForm) Entity() string { return "Notification" }

func (f NotificationForm) Success(bool) string {
	if f.ScheduleType == "scheduled" {
		return "Notification scheduled successfully!"
	}
	return "Notification sent successfully!"
}

func (NotificationForm) messages() map[string]string {
	return map[string]string{
		"title":                  "Title must be at least 3 characters",
		"message":                "Message must be at least 10 characters",
		"scheduledDate.required": "Scheduled date is required for scheduled notifications",
	}
}

func notificationSchedule(sl validator.StructLevel) {
	f := sl.Current().Interface().(NotificationForm)
	if f.ScheduleType == "scheduled" && f.ScheduledDate == "" {
		sl.ReportError(f.ScheduledDate, "scheduledDate", "ScheduledDate", "required", "")
	}
}

// before reports a < b for two valid YYYY-MM-DD dates; invalid dates are left to the date tag.
func before(a, b string) bool {
	ta, err := utils.ParseDate(a)
	if err != nil {
		return false
	}
	tb, err := utils.ParseDate(b)
	if err != nil {
		return false
	}
	return ta.Before(tb)
}
