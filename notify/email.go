package notify

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/UDAVALAPATISURESH/backend-spn/config"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// Mailer sends lifecycle emails over SMTP, with an optional SMS sender for
// the short-notice reminder. A nil SMS sender downgrades that reminder to
// email only.
type Mailer struct {
	cfg *config.Config
	sms *SMSSender
}

func NewMailer(cfg *config.Config, sms *SMSSender) *Mailer {
	return &Mailer{cfg: cfg, sms: sms}
}

func (m *Mailer) send(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("recipient has no email address")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.EmailUser)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.EmailUser, m.cfg.EmailPass)
	return d.DialAndSend(msg)
}

func (m *Mailer) SendBookingCreated(a *models.Appointment) error {
	subject := "Booking Received - Awaiting Payment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your booking request. Please complete the payment to confirm your appointment.</p>
		%s
		<p>Your appointment will be confirmed once payment is verified.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, a.User.Name, appointmentDetailsHTML(a))
	return m.send(a.User.Email, subject, body)
}

func (m *Mailer) SendBookingConfirmation(a *models.Appointment) error {
	subject := "Appointment Confirmed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been confirmed. We look forward to seeing you!</p>
		%s
		<p>If you need to reschedule or cancel, please do so at least 24 hours in advance.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, a.User.Name, appointmentDetailsHTML(a))
	return m.send(a.User.Email, subject, body)
}

func (m *Mailer) SendInvoice(a *models.Appointment, p *models.Payment) error {
	subject := fmt.Sprintf("Invoice for Appointment #%d", a.ID)
	invoiceLine := ""
	if p.InvoiceURL != "" {
		invoiceLine = fmt.Sprintf(`<p><a href="%s">Download your invoice</a></p>`, p.InvoiceURL)
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for your payment of %.2f %s via %s.</p>
		%s
		%s
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, a.User.Name, p.Amount, p.Currency, p.Provider, appointmentDetailsHTML(a), invoiceLine)
	return m.send(a.User.Email, subject, body)
}

func (m *Mailer) SendReschedule(a *models.Appointment) error {
	subject := "Appointment Rescheduled"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been rescheduled. Here are the updated details:</p>
		%s
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, a.User.Name, appointmentDetailsHTML(a))
	return m.send(a.User.Email, subject, body)
}

func (m *Mailer) SendCancellation(a *models.Appointment) error {
	subject := "Appointment Cancelled"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment scheduled for %s has been cancelled.</p>
		<p>We hope to see you again soon. You can book a new appointment anytime.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, a.User.Name, a.StartTime.Format("Monday, 02 Jan 2006 at 03:04 PM"))
	return m.send(a.User.Email, subject, body)
}

func (m *Mailer) SendCompletion(a *models.Appointment) error {
	subject := "Thank You for Visiting Us"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment is now complete. We hope you enjoyed your visit!</p>
		%s
		<p>We would love your feedback - you can leave a review for each completed service.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, a.User.Name, appointmentDetailsHTML(a))
	return m.send(a.User.Email, subject, body)
}

func (m *Mailer) SendReminder(a *models.Appointment) error {
	subject := "Reminder: Upcoming Appointment Tomorrow"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment scheduled in about 24 hours.</p>
		%s
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Salon Team</p>
	`, a.User.Name, appointmentDetailsHTML(a))
	return m.send(a.User.Email, subject, body)
}

func (m *Mailer) SendFifteenMinuteReminder(a *models.Appointment) error {
	if m.sms != nil && a.User.Phone != "" {
		text := fmt.Sprintf("Reminder: your appointment starts at %s. See you soon!",
			a.StartTime.Format("03:04 PM"))
		if err := m.sms.Send(a.User.Phone, text); err == nil {
			return nil
		}
		// SMS failed, fall through to email.
	}

	subject := "Your Appointment Starts Soon"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment starts in about 15 minutes.</p>
		%s
		<p>See you soon!</p>
	`, a.User.Name, appointmentDetailsHTML(a))
	return m.send(a.User.Email, subject, body)
}

// appointmentDetailsHTML renders the shared details block: one line per
// service with its staff member and sub-interval.
func appointmentDetailsHTML(a *models.Appointment) string {
	var items strings.Builder
	for _, sa := range a.Services {
		items.WriteString(fmt.Sprintf("<li><strong>%s</strong> with %s (%s - %s)</li>",
			sa.Service.Name, sa.Staff.Name,
			sa.StartTime.Format("03:04 PM"), sa.EndTime.Format("03:04 PM")))
	}
	if items.Len() == 0 && a.Service != nil {
		staffName := ""
		if a.Staff != nil {
			staffName = " with " + a.Staff.Name
		}
		items.WriteString(fmt.Sprintf("<li><strong>%s</strong>%s</li>", a.Service.Name, staffName))
	}

	return fmt.Sprintf(`
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
			%s
			<li><strong>Status:</strong> %s</li>
		</ul>
	`, a.StartTime.Format("Monday, 02 Jan 2006"),
		a.StartTime.Format("03:04 PM"), a.EndTime.Format("03:04 PM"),
		items.String(), a.Status)
}
