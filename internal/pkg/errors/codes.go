package errors

import "fmt"

// Process exit codes. CI gates key off these: zero means a clean tree,
// one means policy violations were reported, two means the scan itself
// could not complete.
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitFatal      = 2
)

// Scan error codes.
const (
	CodeViolationsFound = "VIOLATIONS_FOUND"
	CodeScanRootInvalid = "SCAN_ROOT_INVALID"
	CodeScanIOFailure   = "SCAN_IO_FAILURE"
)

// Reporting error codes.
const (
	CodeReportEncodeFailed  = "REPORT_ENCODE_FAILED"
	CodeOutputFormatInvalid = "OUTPUT_FORMAT_INVALID"
)

// Convenience constructors using predefined codes.

// ViolationsFound signals that the scan completed and found violations.
// The report has already been written when this error is returned.
func ViolationsFound(count int) *AppError {
	return &AppError{
		Code:     CodeViolationsFound,
		Message:  fmt.Sprintf("%d violation(s) found", count),
		ExitCode: ExitViolations,
	}
}

// RootInvalid signals that the scan root does not exist or is not usable.
func RootInvalid(root string, err error) *AppError {
	return &AppError{
		Code:     CodeScanRootInvalid,
		Message:  fmt.Sprintf("invalid scan root %q", root),
		ExitCode: ExitFatal,
		Err:      err,
	}
}

// IOFailure signals that a file or directory could not be read mid-scan.
func IOFailure(path string, err error) *AppError {
	return &AppError{
		Code:     CodeScanIOFailure,
		Message:  fmt.Sprintf("cannot read %q", path),
		ExitCode: ExitFatal,
		Err:      err,
	}
}

// EncodeFailed signals that a report could not be serialized or written.
func EncodeFailed(format string, err error) *AppError {
	return &AppError{
		Code:     CodeReportEncodeFailed,
		Message:  fmt.Sprintf("cannot encode %s report", format),
		ExitCode: ExitFatal,
		Err:      err,
	}
}

// OutputInvalid signals an unknown --output format value.
func OutputInvalid(format string) *AppError {
	return &AppError{
		Code:     CodeOutputFormatInvalid,
		Message:  fmt.Sprintf("unknown output format %q (want text, json, or sarif)", format),
		ExitCode: ExitFatal,
	}
}
