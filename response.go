package webpurify

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/embarkstudios/webpurify-go/internal"
)

var errMissingRsp = errors.New(`missing field "rsp"`)

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

// validateRsp applies the checks shared by every method: an embedded error object wins,
// then a non-ok stat, then a method that does not match the one being parsed. Absent
// attributes and method fields are accepted.
func validateRsp(rsp *internal.Rsp, expectedMethod string) error {
	if rsp.Err != nil {
		var code, msg string
		if rsp.Err.Attributes != nil {
			code, msg = rsp.Err.Attributes.Code, rsp.Err.Attributes.Msg
		}
		return newAPIError(code, msg)
	}

	if rsp.Attributes != nil && rsp.Attributes.Stat != "ok" {
		return &StatError{Stat: rsp.Attributes.Stat}
	}

	if rsp.Method != nil && *rsp.Method != expectedMethod {
		return &MethodMismatchError{Actual: *rsp.Method, Expected: expectedMethod}
	}
	return nil
}

func parseRsp(status int, body []byte, expectedMethod string) (*internal.Rsp, error) {
	if !isSuccess(status) {
		return nil, &StatusError{StatusCode: status}
	}

	var envelope internal.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if envelope.Rsp == nil {
		return nil, &DecodeError{Err: errMissingRsp}
	}

	if err := validateRsp(envelope.Rsp, expectedMethod); err != nil {
		return nil, err
	}
	return envelope.Rsp, nil
}

// ParseCheckResult returns true if WebPurify flagged the text of a check call.
func ParseCheckResult(status int, body []byte) (bool, error) {
	rsp, err := parseRsp(status, body, MethodCheck)
	if err != nil {
		return false, err
	}

	// found is the number of matches sent as a string
	if rsp.Found == nil {
		return false, &FieldError{Field: "found", Err: ErrMissingField}
	}
	found, err := strconv.ParseUint(*rsp.Found, 10, 32)
	if err != nil {
		return false, &FieldError{Field: "found", Err: ErrInvalidField}
	}
	return found > 0, nil
}

// ParseReplaceResult returns the sanitized text of a replace call. The text is returned
// exactly as WebPurify sent it.
func ParseReplaceResult(status int, body []byte) (string, error) {
	rsp, err := parseRsp(status, body, MethodReplace)
	if err != nil {
		return "", err
	}

	if rsp.Text == nil {
		return "", &FieldError{Field: "text", Err: ErrMissingField}
	}
	return *rsp.Text, nil
}

// ParseSmartScreenResult decodes the flat smart screen response. If the service answered
// with the regular rsp envelope instead, its error and stat are classified first.
func ParseSmartScreenResult(status int, body []byte) (*SmartScreenResult, error) {
	if !isSuccess(status) {
		return nil, &StatusError{StatusCode: status}
	}

	var w internal.SmartScreenResponse
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if w.Rsp != nil {
		if err := validateRsp(w.Rsp, MethodSmartScreen); err != nil {
			return nil, err
		}
	}

	return new(SmartScreenResult).fromWire(&w)
}

// readBody returns the status and body of resp. The body is left unread for non-2xx
// responses since the parsers never look at it.
func readBody(resp *http.Response) (int, []byte, error) {
	if !isSuccess(resp.StatusCode) {
		return resp.StatusCode, nil, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// ProfanityCheckResult is ParseCheckResult for a response received by the caller's own
// transport. The caller still owns and closes resp.Body.
func ProfanityCheckResult(resp *http.Response) (bool, error) {
	status, body, err := readBody(resp)
	if err != nil {
		return false, err
	}
	return ParseCheckResult(status, body)
}

// ProfanityReplaceResult is ParseReplaceResult for a response received by the caller's own
// transport. The caller still owns and closes resp.Body.
func ProfanityReplaceResult(resp *http.Response) (string, error) {
	status, body, err := readBody(resp)
	if err != nil {
		return "", err
	}
	return ParseReplaceResult(status, body)
}

// SmartScreenResultFrom is ParseSmartScreenResult for a response received by the caller's
// own transport. The caller still owns and closes resp.Body.
func SmartScreenResultFrom(resp *http.Response) (*SmartScreenResult, error) {
	status, body, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	return ParseSmartScreenResult(status, body)
}
