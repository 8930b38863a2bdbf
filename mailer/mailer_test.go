package mailer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"

	"quick_heal/model"
)

type captureSender struct {
	failWith error
	messages []*gomail.Message
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.messages = append(s.messages, m...)
	return nil
}

func newTestMailer(s sender) *SMTPMailer {
	m := New(Config{
		Host:       "localhost",
		Port:       587,
		From:       "Quick Heal Order System <no-reply@quickheal.local>",
		AdminEmail: "seller@quickheal.local",
	})
	m.dialer = s
	return m
}

func sampleOrderEmail() model.OrderEmail {
	line2 := "Near City Hospital"
	return model.OrderEmail{
		OrderNumber:      "#QHAB12CD",
		CustomerName:     "Asha",
		CustomerEmail:    "asha@example.com",
		OrderDate:        "Aug 27, 2026",
		ExpectedDelivery: "Aug 29, 2026",
		Items: []model.OrderEmailItem{
			{Name: "Paracetamol 500mg", Quantity: 2, UnitPrice: 50, LineTotal: 100},
		},
		Address: model.Address{
			Name:         "Asha",
			Phone:        "9876543210",
			AddressLine1: "12 MG Road",
			AddressLine2: &line2,
			City:         "Pune",
			State:        "Maharashtra",
			Pincode:      "411001",
		},
		Subtotal: 100,
		Delivery: 30,
		Total:    130,
	}
}

func messageBody(t *testing.T, msg *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendOrderConfirmationSendsBoth(t *testing.T) {
	capture := &captureSender{}
	m := newTestMailer(capture)

	require.NoError(t, m.SendOrderConfirmation(sampleOrderEmail()))
	require.Len(t, capture.messages, 2)

	customer := capture.messages[0]
	assert.Equal(t, []string{"asha@example.com"}, customer.GetHeader("To"))
	body := messageBody(t, customer)
	assert.Contains(t, body, "#QHAB12CD")
	assert.Contains(t, body, "Paracetamol 500mg")

	admin := capture.messages[1]
	assert.Equal(t, []string{"seller@quickheal.local"}, admin.GetHeader("To"))
	adminBody := messageBody(t, admin)
	assert.Contains(t, adminBody, "IMMEDIATE")
	assert.Contains(t, adminBody, "9876543210")

	sent, failed := m.Counters()
	assert.Equal(t, int64(2), sent)
	assert.Equal(t, int64(0), failed)
}

func TestSendOrderConfirmationRelayDown(t *testing.T) {
	m := newTestMailer(&captureSender{failWith: errors.New("dial tcp: connection refused")})

	err := m.SendOrderConfirmation(sampleOrderEmail())
	require.Error(t, err)

	sent, failed := m.Counters()
	assert.Equal(t, int64(0), sent)
	assert.Equal(t, int64(2), failed, "both sends are attempted independently")
}

func TestSendAppointmentNotificationSendsBoth(t *testing.T) {
	capture := &captureSender{}
	m := newTestMailer(capture)

	concern := "recurring migraines"
	require.NoError(t, m.SendAppointmentNotification(model.AppointmentEmail{
		Name:        "Asha",
		Email:       "asha@example.com",
		Date:        "Tuesday, September 1, 2026",
		Doctor:      "Dr. Mehta",
		Message:     &concern,
		RequestedAt: "Aug 27, 2026 10:30",
	}))
	require.Len(t, capture.messages, 2)

	admin := capture.messages[0]
	assert.Equal(t, []string{"seller@quickheal.local"}, admin.GetHeader("To"))
	assert.Equal(t, []string{"New Doctor Appointment Request - Asha"}, admin.GetHeader("Subject"))
	adminBody := messageBody(t, admin)
	assert.Contains(t, adminBody, "Dr. Mehta")
	assert.Contains(t, adminBody, "recurring migraines")

	patient := capture.messages[1]
	assert.Equal(t, []string{"asha@example.com"}, patient.GetHeader("To"))
	assert.Contains(t, messageBody(t, patient), "Dear Asha")

	sent, failed := m.Counters()
	assert.Equal(t, int64(2), sent)
	assert.Equal(t, int64(0), failed)
}

func TestSendAppointmentNotificationRelayDown(t *testing.T) {
	m := newTestMailer(&captureSender{failWith: errors.New("dial tcp: connection refused")})

	err := m.SendAppointmentNotification(model.AppointmentEmail{
		Name: "Asha", Email: "asha@example.com",
		Date: "Tuesday, September 1, 2026", Doctor: "Dr. Mehta",
	})
	require.Error(t, err, "appointment sends are not fire-and-forget")
}

func TestSendOrderCompletion(t *testing.T) {
	capture := &captureSender{}
	m := newTestMailer(capture)

	require.NoError(t, m.SendOrderCompletion("asha@example.com", "#QHAB12CD"))
	require.Len(t, capture.messages, 1)
	assert.Equal(t, []string{"Your Order is Completed!"}, capture.messages[0].GetHeader("Subject"))
	assert.Contains(t, messageBody(t, capture.messages[0]), "#QHAB12CD")
}
