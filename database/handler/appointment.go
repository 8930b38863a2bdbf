package handler

import (
	"net/http"

	"quick_heal/model"
	"quick_heal/utils"
)

type appointmentResponse struct {
	Message            string                   `json:"message"`
	AppointmentDetails model.AppointmentDetails `json:"appointmentDetails"`
}

// RequestAppointment handles the public doctor-consult form. Unlike the
// order triggers the emails are the whole point here, so a send failure
// fails the request.
func (h *Handler) RequestAppointment(w http.ResponseWriter, r *http.Request) {
	var body model.AppointmentRequest
	if err := utils.ParseBody(r.Body, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "input field is invalid")
		return
	}

	details, err := h.Appointments.Request(body)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, appointmentResponse{
		Message:            "Appointment request sent successfully! Check your email for confirmation.",
		AppointmentDetails: details,
	})
}
