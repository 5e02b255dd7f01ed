// Package common contains shared constants and sentinel errors used by the
// record store server and its clients.
package common

// APIKeyHeaderName is the gRPC metadata key carrying the public API key on
// every outbound store request.
const APIKeyHeaderName = "apikey"

// DateLayout is the calendar-day format used for the user-chosen "learned on"
// date of vocabulary and notes.
const DateLayout = "2006-01-02"

// Roles recognised in API key claims.
const (
	RoleAnon    = "anon"
	RoleService = "service_role"
)
