// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgCryptoUnavailable is shown when the host cannot provide entropy or
	// the cipher primitives.
	MsgCryptoUnavailable = "cannot encrypt/decrypt on this device"

	// MsgMalformedContainer is shown for a file too short or too damaged to
	// be a sealed report.
	MsgMalformedContainer = "file is not a valid encrypted report"

	// MsgAuthenticationFailure is shown for both a wrong password and a
	// tampered file. The two are never told apart.
	MsgAuthenticationFailure = "incorrect password or corrupted file"

	// MsgExportFailed is the generic text for a failed seal or write.
	MsgExportFailed = "export failed, try again"

	MsgNotSealedFile    = "only .enc files can be opened"
	MsgPasswordTooShort = "password must be at least 6 characters"
	MsgPasswordMismatch = "passwords do not match"
	MsgEmptyPassword    = "password cannot be empty"

	// MsgDocumentNotFound is shown when the report source has no document
	// with the requested id.
	MsgDocumentNotFound = "document not found"

	MsgSourceUnauthorized = "the report source rejected the credentials"
	MsgSourceUnavailable  = "the report source is unavailable, try again later"
	MsgInvalidSource      = "the report source is not configured"

	// MsgViewerUnavailable is shown when the terminal cannot install the
	// viewer protections, so nothing is displayed.
	MsgViewerUnavailable = "the protected viewer cannot run in this terminal"

	MsgPasswordWarning = "Store this password safely. It cannot be recovered."
	MsgViewerBadge     = "Read-only · No download · No print"
	MsgUnexpectedError = "something went wrong"
)
