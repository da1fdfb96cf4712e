// Package api defines the JSON envelope used by every response the card
// service renders outside Huma's own serialization: error bodies, the
// 404/405 fallbacks, and panic recovery.
package api

import "slices"

// Envelope wraps a response payload together with trace metadata and, on
// failure, a structured error. Data is null whenever Error is set, so
// clients can branch on a single field.
type Envelope[T any] struct {
	Data  *T         `json:"data"`
	Meta  Meta       `json:"meta"`
	Error *ErrorBody `json:"error"`
}

// Meta carries request correlation data.
type Meta struct {
	TraceID *string `json:"traceId,omitempty"`
}

// ErrorBody is the machine-readable error shape: a stable code for
// programmatic handling, a human-readable message, and optional
// field-level detail from validation.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldIssue `json:"details,omitempty"`
	TraceID *string      `json:"traceId,omitempty"`
}

// FieldIssue pins an error to a specific input field when one applies.
type FieldIssue struct {
	Field string `json:"field,omitempty"`
	Issue string `json:"issue"`
}

// NewSuccessEnvelope wraps data in a success envelope.
func NewSuccessEnvelope[T any](traceID *string, data T) Envelope[T] {
	return Envelope[T]{
		Data: &data,
		Meta: Meta{TraceID: traceID},
	}
}

// NewErrorEnvelope builds an error envelope with null data. The details
// slice is cloned so later mutation by the caller cannot change the
// rendered response.
func NewErrorEnvelope[T any](traceID *string, code, msg string, details []FieldIssue) Envelope[T] {
	return Envelope[T]{
		Meta: Meta{TraceID: traceID},
		Error: &ErrorBody{
			Code:    code,
			Message: msg,
			Details: slices.Clone(details),
			TraceID: traceID,
		},
	}
}
