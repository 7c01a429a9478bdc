// Package errors defines the failure taxonomy for a mirroring run. Every
// fatal condition carries a code naming the stage that failed, so the CLI
// can report where a run died without string matching.
package errors

import (
	"errors"
	"fmt"
)

const (
	CodeConfig          = "CONFIG"
	CodeParse           = "PARSE"
	CodeAuth            = "AUTH"
	CodeSecretRetrieval = "SECRET_RETRIEVAL"
	CodePublish         = "PUBLISH"
	CodeManifest        = "MANIFEST"
)

// Types ////////////////////////////////////////

type CodedError interface {
	error
	Code() string
}

type codedError struct {
	code string
	msg  string
	err  error
}

func (e *codedError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %s", e.code, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

func (e *codedError) Code() string {
	return e.code
}

func (e *codedError) Unwrap() error {
	return e.err
}

// Error Creators ///////////////////////////////

// Config reports missing or invalid environment configuration.
func Config(format string, v ...interface{}) error {
	return &codedError{code: CodeConfig, msg: fmt.Sprintf(format, v...)}
}

// Parse reports a malformed image spec.
func Parse(format string, v ...interface{}) error {
	return &codedError{code: CodeParse, msg: fmt.Sprintf(format, v...)}
}

// Auth wraps a registry login failure.
func Auth(err error, format string, v ...interface{}) error {
	return &codedError{code: CodeAuth, msg: fmt.Sprintf(format, v...), err: err}
}

// SecretRetrieval wraps a secret store failure.
func SecretRetrieval(err error, format string, v ...interface{}) error {
	return &codedError{code: CodeSecretRetrieval, msg: fmt.Sprintf(format, v...), err: err}
}

// Publish wraps a fetch, build, tag or push failure for one
// (image, tag, platform) triple.
func Publish(err error, format string, v ...interface{}) error {
	return &codedError{code: CodePublish, msg: fmt.Sprintf(format, v...), err: err}
}

// Manifest wraps a manifest assembly or push failure.
func Manifest(err error, format string, v ...interface{}) error {
	return &codedError{code: CodeManifest, msg: fmt.Sprintf(format, v...), err: err}
}

// Helpers //////////////////////////////////////

// Code returns the stage code of err, or the empty string if err carries none.
func Code(err error) string {
	var cerr CodedError
	if errors.As(err, &cerr) {
		return cerr.Code()
	}
	return ""
}

func IsConfig(err error) bool          { return Code(err) == CodeConfig }
func IsParse(err error) bool           { return Code(err) == CodeParse }
func IsAuth(err error) bool            { return Code(err) == CodeAuth }
func IsSecretRetrieval(err error) bool { return Code(err) == CodeSecretRetrieval }
func IsPublish(err error) bool         { return Code(err) == CodePublish }
func IsManifest(err error) bool        { return Code(err) == CodeManifest }
