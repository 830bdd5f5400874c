package models

import "iter"

type WalletTransaction struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	UserName    string  `json:"userName"`
	UserType    string  `json:"userType"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
}

func (t WalletTransaction) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", t.ID},
		field{"userId", t.UserID},
		field{"userName", t.UserName},
		field{"userType", t.UserType},
		field{"amount", t.Amount},
		field{"type", t.Type},
		field{"description", t.Description},
		field{"status", t.Status},
		field{"timestamp", t.Timestamp},
	)
}

// WalletRule bounds withdrawals for one kind of partner account.
type WalletRule struct {
	ID              string  `json:"id"`
	UserType        string  `json:"userType"`
	WithdrawalLimit float64 `json:"withdrawalLimit"`
	MinWithdrawal   float64 `json:"minWithdrawal"`
	MaxWithdrawal   float64 `json:"maxWithdrawal"`
	IsActive        bool    `json:"isActive"`
}

func (r WalletRule) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", r.ID},
		field{"userType", r.UserType},
		field{"withdrawalLimit", r.WithdrawalLimit},
		field{"minWithdrawal", r.MinWithdrawal},
		field{"maxWithdrawal", r.MaxWithdrawal},
		field{"isActive", r.IsActive},
	)
}
