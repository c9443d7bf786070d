package handler

import (
	"errors"
	"filelink/internal/model"
	"filelink/internal/util"
	"log"
	"net/http"
)

// writeServiceError : единое отображение ошибок сервисов на HTTP-ответы
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		util.HandleValidationError(w, validationErr.Fields)
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrNotADirectory):
		util.HandleError(w, "не найдено", http.StatusNotFound)
	default:
		log.Println(err)
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
