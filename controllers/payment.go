package controllers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/config"
	"github.com/UDAVALAPATISURESH/backend-spn/db"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"github.com/UDAVALAPATISURESH/backend-spn/payments"
	"github.com/UDAVALAPATISURESH/backend-spn/utils"
)

type createIntentInput struct {
	AppointmentID uint   `json:"appointment_id"`
	Provider      string `json:"provider"`
}

// CreatePaymentIntent godoc
// @Summary Create a payment order/intent for an appointment
// @Tags payments
// @Accept json
// @Produce json
// @Param body body createIntentInput true "Appointment and provider"
// @Success 201 {object} fiber.Map
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /payments/create-intent [post]
func CreatePaymentIntent(c *fiber.Ctx) error {
	input := new(createIntentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	provider, err := registry.ForName(input.Provider)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Services.Service").Preload("User").Preload("Payment").
		First(&appointment, input.AppointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}

	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)
	if appointment.UserID != userID && role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only pay for your own appointments",
		})
	}
	if appointment.Status == models.StatusCancelled {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot pay for a cancelled appointment",
		})
	}
	if appointment.Payment != nil && appointment.Payment.Status == models.PaymentPaid {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Appointment is already paid",
		})
	}

	amount := 0.0
	for _, sa := range appointment.Services {
		amount += sa.Service.Price
	}
	if amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Appointment has no payable amount",
		})
	}

	meta := payments.Metadata{
		"appointment_id": strconv.FormatUint(uint64(appointment.ID), 10),
		"customer_id":    strconv.FormatUint(uint64(appointment.UserID), 10),
		"customer_name":  appointment.User.Name,
		"customer_email": appointment.User.Email,
		"customer_phone": appointment.User.Phone,
	}

	intent, err := provider.CreateIntent(amount, "INR", meta)
	if err != nil {
		return respondEngineError(c, err)
	}

	payment := appointment.Payment
	if payment == nil {
		payment = &models.Payment{AppointmentID: appointment.ID}
	}
	payment.Amount = amount
	payment.Currency = intent.Currency
	payment.Provider = provider.Name()
	payment.ProviderPaymentID = intent.Ref
	payment.Status = models.PaymentPending

	if err := db.DB.Save(payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save payment",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"payment":  payment,
		"provider": provider.Name(),
		"ref":      intent.Ref,
		"extra":    intent.Extra,
	})
}

type verifyPaymentInput struct {
	AppointmentID uint `json:"appointment_id"`
	// Razorpay Checkout callback fields.
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// VerifyPayment godoc
// @Summary Verify a payment against its provider
// @Description Marks the payment paid only when the provider confirms it
// @Tags payments
// @Accept json
// @Produce json
// @Param body body verifyPaymentInput true "Appointment to verify"
// @Success 200 {object} models.Payment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /payments/verify [post]
func VerifyPayment(c *fiber.Ctx) error {
	input := new(verifyPaymentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var payment models.Payment
	if err := db.DB.Where("appointment_id = ?", input.AppointmentID).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "No payment found for this appointment",
		})
	}
	if payment.Status == models.PaymentPaid {
		return c.JSON(payment)
	}

	// Razorpay posts a checkout signature; reject a bad one before asking the
	// gateway.
	if payment.Provider == models.ProviderRazorpay && input.RazorpaySignature != "" {
		provider, err := registry.ForName(models.ProviderRazorpay)
		if err == nil {
			rp, ok := provider.(*payments.RazorpayProvider)
			if ok && !rp.VerifyCheckoutSignature(payment.ProviderPaymentID, input.RazorpayPaymentID, input.RazorpaySignature) {
				return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
					Message: "Invalid payment signature",
				})
			}
		}
	}

	paid, err := settlePayment(&payment)
	if err != nil {
		return respondEngineError(c, err)
	}
	if !paid {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Payment is not completed yet",
		})
	}

	return c.JSON(payment)
}

// settlePayment re-checks the payment with its provider and persists the paid
// status when the provider confirms. Payment state is never taken from the
// client.
func settlePayment(payment *models.Payment) (bool, error) {
	provider, err := registry.ForName(payment.Provider)
	if err != nil {
		return false, err
	}
	verification, err := provider.Verify(payment.ProviderPaymentID)
	if err != nil {
		return false, err
	}
	if !verification.Paid {
		return false, nil
	}

	payment.Status = models.PaymentPaid
	if payment.InvoiceURL == "" {
		payment.InvoiceURL = fmt.Sprintf("%s/invoices/%d", config.C.BackendURL, payment.AppointmentID)
	}
	return true, db.DB.Save(payment).Error
}

// PaymentWebhook godoc
// @Summary Gateway webhook endpoint
// @Description Looks the order up by reference and re-verifies with the provider
// @Tags payments
// @Accept json
// @Param provider path string true "Provider name"
// @Success 200
// @Router /payments/webhook/{provider} [post]
func PaymentWebhook(c *fiber.Ctx) error {
	providerName := c.Params("provider")
	if _, err := registry.ForName(providerName); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse webhook payload",
		})
	}

	ref := webhookRef(providerName, payload)
	if ref == "" {
		log.Printf("Webhook from %s without an order reference, ignoring", providerName)
		return c.SendStatus(fiber.StatusOK)
	}

	var payment models.Payment
	if err := db.DB.Where("provider = ? AND provider_payment_id = ?", providerName, ref).
		First(&payment).Error; err != nil {
		log.Printf("Webhook from %s for unknown reference %s, ignoring", providerName, ref)
		return c.SendStatus(fiber.StatusOK)
	}
	if payment.Status == models.PaymentPaid {
		return c.SendStatus(fiber.StatusOK)
	}

	if _, err := settlePayment(&payment); err != nil {
		log.Printf("Webhook verification against %s failed for %s: %v", providerName, ref, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// webhookRef digs the order/intent reference out of the provider's payload
// shape.
func webhookRef(provider string, payload map[string]interface{}) string {
	switch provider {
	case models.ProviderStripe:
		if data, ok := payload["data"].(map[string]interface{}); ok {
			if object, ok := data["object"].(map[string]interface{}); ok {
				if id, ok := object["id"].(string); ok {
					return id
				}
			}
		}
	case models.ProviderRazorpay:
		if p, ok := payload["payload"].(map[string]interface{}); ok {
			if payment, ok := p["payment"].(map[string]interface{}); ok {
				if entity, ok := payment["entity"].(map[string]interface{}); ok {
					if orderID, ok := entity["order_id"].(string); ok {
						return orderID
					}
				}
			}
		}
	case models.ProviderCashfree:
		if data, ok := payload["data"].(map[string]interface{}); ok {
			if order, ok := data["order"].(map[string]interface{}); ok {
				if id, ok := order["order_id"].(string); ok {
					return id
				}
			}
		}
	}
	return ""
}
