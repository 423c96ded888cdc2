// Package httperr provides immutable HTTP error values, able to render
// themselves both as a status line-alike string and as a ready response:
// status code, ordered headers and a body.
package httperr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/indigo-web/httperr/mime"
	"github.com/indigo-web/httperr/status"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Construction fails only when a required field is omitted. Both concrete
// errors wrap ErrConstruction, so a single errors.Is covers them.
var (
	ErrConstruction = errors.New("httperr: missing required field")
	ErrNoCode       = fmt.Errorf("%w: status code", ErrConstruction)
	ErrNoReason     = fmt.Errorf("%w: reason phrase", ErrConstruction)
)

// Header is a single response header. Responses carry ordered header slices
// instead of maps, as the emission order matters and duplicates are legal.
type Header struct {
	Key, Value string
}

// Response is an in-memory representation of a response: a status code, an
// ordered header list and the body, split in chunks. It is a pure data
// boundary. Writing it out belongs to a server adapter.
type Response struct {
	Code    status.Code
	Headers []Header
	Body    [][]byte
}

// Error is an immutable value, representing a single HTTP-level exceptional
// outcome. The zero value is unusable, obtain instances via New or From.
// As all fields are fixed at construction, values are freely shareable
// between goroutines.
type Error struct {
	code        status.Code
	reason      string
	message     string
	contentType mime.MIME
	hasMessage  bool
}

var _ error = Error{}

// New constructs an error value from a status code and a reason phrase,
// optionally followed by a message with human-readable details. The code
// and the reason are mandatory; the code isn't otherwise validated, so
// non-standard statuses pass through untouched.
//
// An explicitly passed empty message is remembered as present, which is
// not the same as passing no message at all (see String).
func New(code status.Code, reason string, message ...string) (Error, error) {
	switch {
	case code == 0:
		return Error{}, ErrNoCode
	case len(reason) == 0:
		return Error{}, ErrNoReason
	}

	err := Error{
		code:        code,
		reason:      reason,
		contentType: mime.Plain,
	}
	if len(message) > 0 {
		err.message = message[0]
		err.hasMessage = true
	}

	return err, nil
}

// From constructs an error value for a registered status code, taking the
// reason phrase from the status table. Codes without a registered reason
// are rejected; use New for those.
func From(code status.Code, message ...string) (Error, error) {
	reason := status.Text(code)
	if len(reason) == 0 {
		return Error{}, fmt.Errorf("%w: no reason phrase registered for code %d", ErrConstruction, code)
	}

	return New(code, reason, message...)
}

// Must panics on a construction error. Intended for static initialization
// of well-formed values.
func Must(err Error, cerr error) Error {
	if cerr != nil {
		panic(cerr)
	}

	return err
}

// With returns a copy of the error carrying the given message. The
// receiver stays untouched.
func (e Error) With(message string) Error {
	e.message = message
	e.hasMessage = true
	return e
}

// WithContentType returns a copy of the error whose rendered body is
// declared as the given MIME type. The receiver stays untouched.
func (e Error) WithContentType(contentType mime.MIME) Error {
	e.contentType = contentType
	return e
}

func (e Error) Code() status.Code {
	return e.code
}

func (e Error) Reason() string {
	return e.reason
}

// Message returns the detail message and whether one was set at all.
func (e Error) Message() (string, bool) {
	return e.message, e.hasMessage
}

// ContentType returns the MIME type of the rendered body, mime.Plain
// unless overridden via WithContentType.
func (e Error) ContentType() mime.MIME {
	return e.contentType
}

// String renders the error as "<code> <reason>", followed by " <message>"
// if a message is present. A present-but-empty message still appends the
// separating space.
func (e Error) String() string {
	s := e.code.String() + " " + e.reason
	if e.hasMessage {
		s += " " + e.message
	}

	return s
}

// Error implements the error interface, making values usable directly as
// Go errors. The rendering matches String.
func (e Error) Error() string {
	return e.String()
}

// Headers builds the header list for the given rendered body: the content
// type, followed by the content length. The length is the byte length of
// the body, so multi-byte messages stay correct on the wire.
func (e Error) Headers(body string) []Header {
	return []Header{
		{"Content-Type", e.contentType},
		{"Content-Length", strconv.Itoa(len(body))},
	}
}

// Response assembles the full response: the status code, headers built for
// the rendered body, and the body itself as a single chunk. No I/O happens
// here, transmission is up to the caller.
func (e Error) Response() Response {
	body := e.String()

	return Response{
		Code:    e.code,
		Headers: e.Headers(body),
		Body:    [][]byte{uf.S2B(body)},
	}
}

type jsonError struct {
	Code    status.Code `json:"code"`
	Reason  string      `json:"reason"`
	Message *string     `json:"message,omitempty"`
}

// JSON renders the error as a JSON object. The message key is omitted when
// no message was set, and kept (possibly empty) when one was. Pairs with
// WithContentType(mime.JSON).
func (e Error) JSON() ([]byte, error) {
	model := jsonError{
		Code:   e.code,
		Reason: e.reason,
	}
	if e.hasMessage {
		model.Message = &e.message
	}

	return json.Marshal(model)
}
