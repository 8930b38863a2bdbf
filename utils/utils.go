package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"quick_heal/apperror"
)

type clientError struct {
	Error string `json:"error"`
}

func ParseBody(body io.Reader, out interface{}) error {
	return json.NewDecoder(body).Decode(out)
}

func EncodeJSONBody(w http.ResponseWriter, body interface{}) error {
	return json.NewEncoder(w).Encode(body)
}

func RespondJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Errorf("failed to encode response body: %v", err)
	}
}

func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		logrus.Errorf("%s: %v", message, err)
	} else {
		logrus.Error(message)
	}
	RespondJSON(w, statusCode, clientError{Error: message})
}

// RespondAppError maps taxonomy errors to their HTTP status and everything
// else to a 500.
func RespondAppError(w http.ResponseWriter, err error) {
	status := apperror.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	RespondError(w, status, err, message)
}
