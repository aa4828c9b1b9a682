package response

import (
	"encoding/json"
	"errors"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/logger"
	"net/http"
	"sync/atomic"
)

type Error struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

var exposeDetails atomic.Bool

// ExposeDetails controls whether 500 responses carry the underlying error. Only development
// servers turn it on.
func ExposeDetails(enabled bool) {
	exposeDetails.Store(enabled)
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends payload as the response body as is.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithError sends {error}. Errors that are not a failure.Failure become a generic 500.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	body := Error{Error: constant.ResponseErrorInternal}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		body.Error = fail.Message
	}

	if code >= http.StatusInternalServerError && exposeDetails.Load() {
		body.Detail = detail(err, fail)
	}

	response(writer, code, body)
}

func detail(err error, fail *failure.Failure) string {
	if fail == nil {
		return err.Error()
	}

	if fail.Cause != nil {
		return fail.Cause.Error()
	}

	return constant.Empty
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Error: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Error: constant.ResponseErrorPrepareShutdown})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Error: constant.ResponseErrorUnhealthy})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
