package controllers

import (
	"errors"
	"net/http"

	"kisekae_server/models"
	"kisekae_server/utils"
)

// writeDomainError maps service errors to HTTP statuses. Unknown errors
// become a masked 500; detail is only attached outside production.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrProfileNotFound):
		utils.WriteError(w, http.StatusNotFound, "Not Found")
	case errors.Is(err, models.ErrProfileIncomplete):
		utils.WriteError(w, http.StatusUnprocessableEntity, "Profile is missing a birthday or location")
	case errors.Is(err, models.ErrNothingToUpdate):
		utils.WriteValidationError(w, map[string][]models.FieldErrorDetail{
			"_errors": {{Code: "E001_INVALID_TYPE", Message: "入力形式が正しくありません。"}},
		})
	case errors.Is(err, models.ErrRegionNotFound):
		utils.WriteValidationError(w, map[string][]models.FieldErrorDetail{
			"region": {{Code: "E004_INVALID_STRING", Message: "文字列の形式が正しくありません。"}},
		})
	case errors.Is(err, models.ErrProfileExists):
		utils.WriteError(w, http.StatusConflict, "Profile already exists")
	default:
		utils.WriteInternalError(w, err)
	}
}
