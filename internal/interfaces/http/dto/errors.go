package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	ErrCodeValidation         = "ERR_VALIDATION"
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	ErrCodeValidationFormat   = "ERR_VALIDATION_FORMAT"
	ErrCodeValidationRange    = "ERR_VALIDATION_RANGE"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for the packet state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for domain errors without a dedicated code
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeNotConfigured is used when the Packeta API password is not set
	ErrCodeNotConfigured            = "ERR_NOT_CONFIGURED"
	ErrCodeNoOrdersSelected         = "ERR_NO_ORDERS_SELECTED"
	ErrCodeOrdersNotSubmitted       = "ERR_ORDERS_NOT_SUBMITTED"
	ErrCodeLabelPrintFailed         = "ERR_LABEL_PRINT_FAILED"
	ErrCodeInvalidAPIPassword       = "ERR_INVALID_API_PASSWORD"
	ErrCodePickupPointsNotSupported = "ERR_PICKUP_POINTS_NOT_SUPPORTED"
	ErrCodeInvalidCountry           = "ERR_INVALID_COUNTRY"
	ErrCodeEmptyCarrierFeed         = "ERR_EMPTY_CARRIER_FEED"
	ErrCodeSyncInProgress           = "ERR_SYNC_IN_PROGRESS"
)

// Upstream error codes
const (
	// ErrCodePacketaFault is used when the Packeta API answered with a SOAP fault
	ErrCodePacketaFault = "ERR_PACKETA_FAULT"
	// ErrCodePacketaUnavailable is used when the Packeta API could not be reached
	ErrCodePacketaUnavailable = "ERR_PACKETA_UNAVAILABLE"
)

// Input error codes
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:             http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:             http.StatusUnprocessableEntity,
	ErrCodeNotConfigured:            http.StatusUnprocessableEntity,
	ErrCodeNoOrdersSelected:         http.StatusUnprocessableEntity,
	ErrCodeOrdersNotSubmitted:       http.StatusUnprocessableEntity,
	ErrCodeLabelPrintFailed:         http.StatusBadGateway,
	ErrCodeInvalidAPIPassword:       http.StatusBadGateway,
	ErrCodePickupPointsNotSupported: http.StatusUnprocessableEntity,
	ErrCodeInvalidCountry:           http.StatusBadRequest,
	ErrCodeEmptyCarrierFeed:         http.StatusBadGateway,
	ErrCodeSyncInProgress:           http.StatusConflict,

	ErrCodePacketaFault:       http.StatusUnprocessableEntity,
	ErrCodePacketaUnavailable: http.StatusBadGateway,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                   ErrCodeNotFound,
	"ALREADY_EXISTS":              ErrCodeAlreadyExists,
	"INVALID_INPUT":               ErrCodeInvalidInput,
	"INVALID_STATE":               ErrCodeInvalidState,
	"UNAUTHORIZED":                ErrCodeUnauthorized,
	"NOT_CONFIGURED":              ErrCodeNotConfigured,
	"NO_ORDERS_SELECTED":          ErrCodeNoOrdersSelected,
	"ORDERS_NOT_SUBMITTED":        ErrCodeOrdersNotSubmitted,
	"LABEL_PRINT_FAILED":          ErrCodeLabelPrintFailed,
	"INVALID_API_PASSWORD":        ErrCodeInvalidAPIPassword,
	"PICKUP_POINTS_NOT_SUPPORTED": ErrCodePickupPointsNotSupported,
	"INVALID_COUNTRY":             ErrCodeInvalidCountry,
	"EMPTY_CARRIER_FEED":          ErrCodeEmptyCarrierFeed,
	"SYNC_IN_PROGRESS":            ErrCodeSyncInProgress,
	"INVALID_CART":                ErrCodeInvalidInput,
	"INVALID_LOG_ACTION":          ErrCodeInvalidInput,
	"INVALID_LOG_STATUS":          ErrCodeInvalidInput,
	"INVALID_FLASH_TYPE":          ErrCodeInvalidInput,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Codes without a mapping become ERR_BUSINESS_RULE.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	if _, ok := ErrorCodeHTTPStatus[code]; ok {
		return code
	}
	return ErrCodeBusinessRule
}
