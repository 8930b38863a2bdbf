// Package mailer renders and sends the transactional order emails. It is an
// independent failure domain: callers log send errors and move on, an order
// is never rolled back because the relay was down.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
	gomail "gopkg.in/gomail.v2"

	"quick_heal/model"
)

type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	cfg    Config
	dialer sender

	customerTmpl    *template.Template
	adminTmpl       *template.Template
	apptAdminTmpl   *template.Template
	apptPatientTmpl *template.Template

	sent   atomic.Int64
	failed atomic.Int64
}

func New(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		cfg:             cfg,
		dialer:          gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		customerTmpl:    template.Must(template.New("customer").Parse(customerTemplate)),
		adminTmpl:       template.Must(template.New("admin").Parse(adminTemplate)),
		apptAdminTmpl:   template.Must(template.New("apptAdmin").Parse(appointmentAdminTemplate)),
		apptPatientTmpl: template.Must(template.New("apptPatient").Parse(appointmentPatientTemplate)),
	}
}

// SendOrderConfirmation sends the customer confirmation and the seller
// "action required" alert. The two sends are independent: one failing does
// not stop the other, and both failures come back combined.
func (m *SMTPMailer) SendOrderConfirmation(data model.OrderEmail) error {
	var errs *multierror.Error

	customerBody, err := render(m.customerTmpl, data)
	if err != nil {
		errs = multierror.Append(errs, err)
	} else {
		subject := fmt.Sprintf("Order Confirmed %s - Quick Heal", data.OrderNumber)
		if sendErr := m.send(data.CustomerEmail, subject, customerBody); sendErr != nil {
			errs = multierror.Append(errs, sendErr)
		}
	}

	adminBody, err := render(m.adminTmpl, data)
	if err != nil {
		errs = multierror.Append(errs, err)
	} else {
		subject := fmt.Sprintf("NEW ORDER: %s - %.2f - %s", data.OrderNumber, data.Total, data.CustomerName)
		if sendErr := m.send(m.cfg.AdminEmail, subject, adminBody); sendErr != nil {
			errs = multierror.Append(errs, sendErr)
		}
	}

	return errs.ErrorOrNil()
}

// SendAppointmentNotification sends the seller the appointment request and
// the patient a received-confirmation. Unlike order mail, the caller treats
// a failure here as a request failure: nothing durable backs the form.
func (m *SMTPMailer) SendAppointmentNotification(data model.AppointmentEmail) error {
	var errs *multierror.Error

	adminBody, err := render(m.apptAdminTmpl, data)
	if err != nil {
		errs = multierror.Append(errs, err)
	} else {
		subject := fmt.Sprintf("New Doctor Appointment Request - %s", data.Name)
		if sendErr := m.send(m.cfg.AdminEmail, subject, adminBody); sendErr != nil {
			errs = multierror.Append(errs, sendErr)
		}
	}

	patientBody, err := render(m.apptPatientTmpl, data)
	if err != nil {
		errs = multierror.Append(errs, err)
	} else {
		if sendErr := m.send(data.Email, "Appointment Request Confirmation", patientBody); sendErr != nil {
			errs = multierror.Append(errs, sendErr)
		}
	}

	return errs.ErrorOrNil()
}

// SendOrderCompletion notifies the customer that the seller marked the
// order completed.
func (m *SMTPMailer) SendOrderCompletion(to, orderNumber string) error {
	body := fmt.Sprintf(completionBody, orderNumber)
	return m.send(to, "Your Order is Completed!", body)
}

// Counters reports delivered and failed sends since start.
func (m *SMTPMailer) Counters() (sent, failed int64) {
	return m.sent.Load(), m.failed.Load()
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.failed.Inc()
		logrus.WithError(err).WithField("to", to).Error("mailer: send failed")
		return err
	}
	m.sent.Inc()
	return nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
