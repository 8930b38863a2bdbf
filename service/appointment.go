package service

import (
	"time"

	"quick_heal/apperror"
	"quick_heal/model"
)

// AppointmentMailer is the notification boundary for doctor-consult
// requests. There is no durable record behind the form, so a failed send
// fails the request.
type AppointmentMailer interface {
	SendAppointmentNotification(email model.AppointmentEmail) error
}

type AppointmentService struct {
	mailer AppointmentMailer
}

func NewAppointmentService(mailer AppointmentMailer) *AppointmentService {
	return &AppointmentService{mailer: mailer}
}

// Request notifies the seller of a new appointment request and confirms
// receipt to the patient. Returns the echoed details on success.
func (s *AppointmentService) Request(req model.AppointmentRequest) (model.AppointmentDetails, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.AppointmentDetails{}, apperror.Validation("date must be YYYY-MM-DD")
	}
	prettyDate := date.Format("Monday, January 2, 2006")

	email := model.AppointmentEmail{
		Name:        req.Name,
		Email:       req.Email,
		Date:        prettyDate,
		Doctor:      req.Doctor,
		Message:     req.Message,
		RequestedAt: time.Now().Format("Jan 2, 2006 15:04"),
	}
	if err := s.mailer.SendAppointmentNotification(email); err != nil {
		return model.AppointmentDetails{}, apperror.External("appointment request email failed", err)
	}

	return model.AppointmentDetails{
		Name:   req.Name,
		Email:  req.Email,
		Date:   prettyDate,
		Doctor: req.Doctor,
	}, nil
}
