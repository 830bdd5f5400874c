package utils

import (
	"fmt"
	"strconv"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatINR renders an amount with the rupee sign and no padding: ₹650, ₹12.5.
func FormatINR(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', -1, 64)
}

// FormatINRFixed renders an amount with two decimals: ₹1000.00.
func FormatINRFixed(amount float64) string {
	return "₹" + FormatMoney(amount)
}
