package models

import "iter"

// User is a console account. Passwords never leave the form layer.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	LastLogin string `json:"lastLogin"`
}

func (u User) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", u.ID},
		field{"name", u.Name},
		field{"email", u.Email},
		field{"role", u.Role},
		field{"status", u.Status},
		field{"lastLogin", u.LastLogin},
	)
}

type Coupon struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	ServiceType   string  `json:"serviceType"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	StartDate     string  `json:"startDate"`
	ExpiryDate    string  `json:"expiryDate"`
	Status        string  `json:"status"`
}

func (c Coupon) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", c.ID},
		field{"name", c.Name},
		field{"code", c.Code},
		field{"serviceType", c.ServiceType},
		field{"discountType", c.DiscountType},
		field{"discountValue", c.DiscountValue},
		field{"startDate", c.StartDate},
		field{"expiryDate", c.ExpiryDate},
		field{"status", c.Status},
	)
}

// Commission is the platform's cut on one service. A nil EndDate is open ended.
type Commission struct {
	ID              string  `json:"id"`
	ServiceType     string  `json:"serviceType"`
	CommissionType  string  `json:"commissionType"`
	CommissionValue float64 `json:"commissionValue"`
	StartDate       string  `json:"startDate"`
	EndDate         *string `json:"endDate"`
	IsActive        bool    `json:"isActive"`
}

func (c Commission) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", c.ID},
		field{"serviceType", c.ServiceType},
		field{"commissionType", c.CommissionType},
		field{"commissionValue", c.CommissionValue},
		field{"startDate", c.StartDate},
		field{"endDate", opt(c.EndDate)},
		field{"isActive", c.IsActive},
	)
}
