package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Code    int               `json:"code"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	writeError(w, errorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

// HandleValidationError : 400 с сообщениями по полям
func HandleValidationError(w http.ResponseWriter, fields map[string]string) {
	writeError(w, errorResponse{
		Error:   http.StatusText(http.StatusBadRequest),
		Message: "ошибка валидации",
		Code:    http.StatusBadRequest,
		Fields:  fields,
	})
}

func writeError(w http.ResponseWriter, response errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.Code)
	json.NewEncoder(w).Encode(response)
}

func WriteJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[util] ошибка записи ответа: %v", err)
	}
}
