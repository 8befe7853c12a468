package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	HTTP    int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.HTTP
}

type StructuredError struct {
	Status string              `json:"status"`
	Errors map[string][]string `json:"errors"`
	HTTP   int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.HTTP
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")

	UnauthorizedError  = NewSimple(http.StatusUnauthorized, "Missing or unknown access token")
	InvalidAPIKeyError = NewSimple(http.StatusUnauthorized, "Invalid API key")
)

func NewDuplicateUserError(username string) *APIError {
	return NewSimple(http.StatusConflict, "The username '%s' is already taken by another user", username)
}

func NewDuplicateNotebookError(name string) *APIError {
	return NewSimple(http.StatusConflict, "A notebook with the name '%s' already exists for this user", name)
}

func NewDuplicateNoteError(key, notebook string) *APIError {
	return NewSimple(http.StatusConflict, "A note with the key '%s' already exists for the notebook '%s'", key, notebook)
}

func NewUserNotFoundError(username string) *APIError {
	return NewSimple(http.StatusNotFound, "The user '%s' does not exist", username)
}

func NewNotebookNotFoundError(name string) *APIError {
	return NewSimple(http.StatusNotFound, "The notebook '%s' does not exist", name)
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "nospaces":
			problems[field] = append(problems[field], "Value must not contain whitespace")
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Status: "Error",
		Errors: problems,
		HTTP:   http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: "Error", Message: msg, HTTP: status}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Status: "Error",
		Errors: make(map[string][]string),
		HTTP:   code,
	}
}
