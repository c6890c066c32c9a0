package common

import "errors"

// Notice turns an action error into a single short line suitable for the
// user. Internal details (wrapped driver errors, request IDs) are not shown.
func Notice(err error) string {
	if err == nil {
		return ""
	}

	var (
		ve *ValidationError
		te *TransportError
		se *ServerError
		st *StorageError
	)

	switch {
	case errors.As(err, &ve):
		return "Please fill all fields"
	case errors.Is(err, ErrBusy):
		return "Please wait, the previous request is still running"
	case errors.Is(err, ErrMalformedResponse):
		return "Unexpected response from server"
	case errors.Is(err, ErrUnauthorized):
		return "Session expired, please log in again"
	case errors.As(err, &se):
		return se.Message
	case errors.As(err, &te):
		return "Server unavailable, check your connection"
	case errors.As(err, &st):
		if st.Op == "remove" {
			return "Logout failed"
		}
		return "Could not save session on this device"
	case errors.Is(err, ErrLogoutFinished):
		return "Logout already handled"
	default:
		return "Something went wrong"
	}
}
