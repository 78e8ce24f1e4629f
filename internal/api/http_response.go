package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/api/handlers"
	"github.com/babylonchain/bridge-pool-service/internal/observability/metrics"
	"github.com/babylonchain/bridge-pool-service/internal/types"
)

const internalServiceErrorMessage = "Internal service error"

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

func registerHandler(handlerFunc func(*http.Request) (*handlers.Result, *types.Error)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		timer := metrics.StartHttpRequestDurationTimer(r.URL.Path)

		result, err := handlerFunc(r)
		if err != nil {
			statusCode := writeError(w, r, err)
			timer(statusCode)
			return
		}

		if result == nil || http.StatusText(result.Status) == "" {
			log.Ctx(r.Context()).Error().Msg("invalid success response, error returned")
			timer(http.StatusInternalServerError)
			writeResponse(w, r, http.StatusInternalServerError, &ErrorResponse{
				ErrorCode: types.InternalServiceError.String(),
				Message:   internalServiceErrorMessage,
			})
			return
		}

		timer(result.Status)
		writeResponse(w, r, result.Status, result.Data)
	}
}

// writeError writes err and returns the status code sent. Messages of 5xx
// errors are logged and replaced by a generic one.
func writeError(w http.ResponseWriter, r *http.Request, err *types.Error) int {
	statusCode := err.StatusCode
	if http.StatusText(statusCode) == "" {
		log.Ctx(r.Context()).Error().Err(err).Int("status_code", statusCode).Msg("invalid status code")
		statusCode = http.StatusInternalServerError
	}

	errorResponse := &ErrorResponse{
		ErrorCode: err.ErrorCode.String(),
		Message:   err.Err.Error(),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(errorResponse).Msg("request failed with 5xx error")
		errorResponse.Message = internalServiceErrorMessage
	}
	writeResponse(w, r, statusCode, errorResponse)
	return statusCode
}

func writeResponse(w http.ResponseWriter, r *http.Request, statusCode int, res interface{}) {
	respBytes, err := json.Marshal(res)
	if err != nil {
		log.Ctx(r.Context()).Err(err).Msg("failed to marshal response")
		http.Error(w, "Failed to process the request. Please try again later.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(respBytes) // nolint:errcheck
}
