package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrInvalidSessionCode = ErrorResponse{
		Status:  "error",
		Error:   "invalid_session_code",
		Details: "Photobooth code is not valid",
	}

	ErrSessionNotFound = ErrorResponse{
		Status:  "error",
		Error:   "session_not_found",
		Details: "No photos found for this photobooth code",
	}

	ErrImageNotFound = ErrorResponse{
		Status:  "error",
		Error:   "image_not_found",
		Details: "Image not found",
	}

	ErrAssetUnavailable = ErrorResponse{
		Status:  "error",
		Error:   "asset_unavailable",
		Details: "The animation for this photo is not ready yet, please try again later",
	}

	ErrGalleryUnavailable = ErrorResponse{
		Status:  "error",
		Error:   "gallery_unavailable",
		Details: "Gallery could not be read",
	}

	ErrClientUnidentified = ErrorResponse{
		Status:  "error",
		Error:   "client_unidentified",
		Details: "Client address could not be determined",
	}

	ErrTooManyAttempts = ErrorResponse{
		Status:  "error",
		Error:   "too_many_attempts",
		Details: "Too many attempts, please wait a moment",
	}
)
