package services

import (
	"context"
	"fmt"

	"travelconsole/internal/domain"
	"travelconsole/internal/repositories"
)

// ServiceStats summarizes the bookings of one vertical.
type ServiceStats struct {
	Service   domain.ServiceType `json:"service"`
	Bookings  int                `json:"bookings"`
	Cancelled int                `json:"cancelled"`
	// Revenue sums every booking that was not cancelled.
	Revenue float64 `json:"revenue"`
}

type WalletStats struct {
	Credits            float64 `json:"credits"`
	Debits             float64 `json:"debits"`
	PendingWithdrawals int     `json:"pendingWithdrawals"`
	FailedAmount       float64 `json:"failedAmount"`
}

type Dashboard struct {
	TotalBookings int            `json:"totalBookings"`
	Services      []ServiceStats `json:"services"`
	Customers     int            `json:"customers"`
	ActiveUsers   int            `json:"activeUsers"`
	ActiveCoupons int            `json:"activeCoupons"`
	Wallet        WalletStats    `json:"wallet"`
}

type DashboardService struct {
	Store *repositories.Store
}

type booking struct {
	amount float64
	status string
}

func tally(service domain.ServiceType, rows []booking) ServiceStats {
	st := ServiceStats{Service: service, Bookings: len(rows)}
	for _, b := range rows {
		if b.status == string(domain.StatusCancelled) {
			st.Cancelled++
			continue
		}
		st.Revenue += b.amount
	}
	return st
}

func (s DashboardService) Summary(ctx context.Context) (Dashboard, error) {
	var d Dashboard

	bus, err := s.Store.BusBookings.List(ctx)
	if err != nil {
		return d, fmt.Errorf("bus bookings: %w", err)
	}
	hotel, err := s.Store.HotelBookings.List(ctx)
	if err != nil {
		return d, fmt.Errorf("hotel bookings: %w", err)
	}
	taxi, err := s.Store.TaxiBookings.List(ctx)
	if err != nil {
		return d, fmt.Errorf("taxi bookings: %w", err)
	}
	bike, err := s.Store.BikeBookings.List(ctx)
	if err != nil {
		return d, fmt.Errorf("bike bookings: %w", err)
	}

	rows := map[domain.ServiceType][]booking{}
	for _, b := range bus {
		rows[domain.ServiceBus] = append(rows[domain.ServiceBus], booking{float64(b.Amount), b.Status})
	}
	for _, b := range hotel {
		rows[domain.ServiceHotel] = append(rows[domain.ServiceHotel], booking{float64(b.Amount), b.Status})
	}
	for _, b := range taxi {
		rows[domain.ServiceTaxi] = append(rows[domain.ServiceTaxi], booking{float64(b.Amount), b.Status})
	}
	for _, b := range bike {
		rows[domain.ServiceBike] = append(rows[domain.ServiceBike], booking{float64(b.Amount), b.Status})
	}
	for _, svc := range domain.Services {
		st := tally(svc, rows[svc])
		d.Services = append(d.Services, st)
		d.TotalBookings += st.Bookings
	}

	customers, err := s.Store.Customers.List(ctx)
	if err != nil {
		return d, fmt.Errorf("customers: %w", err)
	}
	d.Customers = len(customers)

	users, err := s.Store.Users.List(ctx)
	if err != nil {
		return d, fmt.Errorf("users: %w", err)
	}
	for _, u := range users {
		if u.Status == string(domain.StatusApproved) {
			d.ActiveUsers++
		}
	}

	coupons, err := s.Store.Coupons.List(ctx)
	if err != nil {
		return d, fmt.Errorf("coupons: %w", err)
	}
	for _, c := range coupons {
		if c.Status == "active" {
			d.ActiveCoupons++
		}
	}

	txs, err := s.Store.WalletTransactions.List(ctx)
	if err != nil {
		return d, fmt.Errorf("wallet transactions: %w", err)
	}
	for _, tx := range txs {
		switch {
		case tx.Status == "failed":
			d.Wallet.FailedAmount += tx.Amount
		case tx.Status == "pending" && tx.Type == "debit":
			d.Wallet.PendingWithdrawals++
		case tx.Type == "credit":
			d.Wallet.Credits += tx.Amount
		case tx.Type == "debit":
			d.Wallet.Debits += tx.Amount
		}
	}
	return d, nil
}
