package models

import (
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

const (
	ProviderStripe   = "stripe"
	ProviderRazorpay = "razorpay"
	ProviderCashfree = "cashfree"
)

// Payment is keyed 1:1 to an appointment. Status only becomes "paid" through
// provider-verified confirmation, never by client assertion.
type Payment struct {
	gorm.Model
	AppointmentID     uint          `json:"appointment_id" gorm:"uniqueIndex"`
	Amount            float64       `json:"amount"`
	Currency          string        `json:"currency" gorm:"default:INR"`
	Provider          string        `json:"provider"`
	ProviderPaymentID string        `json:"provider_payment_id"`
	Status            PaymentStatus `json:"status" gorm:"default:pending"`
	InvoiceURL        string        `json:"invoice_url"`
}
