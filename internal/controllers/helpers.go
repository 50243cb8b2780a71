package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/middleware"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

var validate = validator.New()

// formatValidationErrors converts validator errors into a user-friendly format.
func formatValidationErrors(errs validator.ValidationErrors) []dtos.ValidationErrorDetail {
	var details []dtos.ValidationErrorDetail
	for _, err := range errs {
		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", err.Field())
		case "email":
			message = fmt.Sprintf("Field '%s' must be a valid email address", err.Field())
		case "min":
			message = fmt.Sprintf("Field '%s' must be at least %s in length", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("Field '%s' must not exceed %s in length", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("Field '%s' must be one of [%s]", err.Field(), err.Param())
		case "datetime":
			message = fmt.Sprintf("Field '%s' must match the format %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", err.Field(), err.Tag())
		}
		details = append(details, dtos.ValidationErrorDetail{
			Field:   err.Field(),
			Message: message,
			Code:    "validation_" + err.Tag(),
		})
	}
	return details
}

// respondValidationError handles both typed validator errors and anything
// else validate.Struct might return.
func respondValidationError(w http.ResponseWriter, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Validation failed", formatValidationErrors(validationErrs),
		)
		return
	}
	utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
}

func getUserID(r *http.Request) (uuid.UUID, error) {
	ctxUserID := r.Context().Value(middleware.ContextKeyUserID)
	if ctxUserID == nil {
		return uuid.Nil, &utils.AppError{StatusCode: http.StatusUnauthorized, Code: utils.ErrCodeUnauthorized, Message: "Missing userID in context"}
	}
	userID, err := uuid.Parse(ctxUserID.(string))
	if err != nil {
		return uuid.Nil, &utils.AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeInvalidPayload, Message: "Invalid userID format", Err: err}
	}
	return userID, nil
}

func getUserEmail(r *http.Request) (string, error) {
	ctxEmail := r.Context().Value(middleware.ContextKeyUserEmail)
	email, ok := ctxEmail.(string)
	if !ok || email == "" {
		return "", &utils.AppError{StatusCode: http.StatusUnauthorized, Code: utils.ErrCodeUnauthorized, Message: "Missing email in context"}
	}
	return email, nil
}

// pathUUID parses the {id} route variable.
func pathUUID(r *http.Request) (uuid.UUID, error) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &utils.AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeInvalidPayload, Message: "Invalid id format", Err: err}
	}
	return id, nil
}
