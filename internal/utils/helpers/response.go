package helpers

import (
	"encoding/json"
	"net/http"

	"wisdomcircle/internal/apperr"
)

// Response — единый конверт ответа API.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Response{Success: true, Data: data})
	if err != nil {
		return
	}
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Response{Success: false, Error: errMsg})
	if err != nil {
		return
	}
}

// FromError выбирает статус по категории ошибки (apperr → HTTP).
func FromError(w http.ResponseWriter, err error) {
	Error(w, apperr.StatusOf(err), err.Error())
}
