// Package internal holds the JSON shapes WebPurify puts on the wire. None of it is
// part of the public API; the root package converts these into its own types.
package internal

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidStringBool is returned when a flag is anything other than the strings "true" or "false".
var ErrInvalidStringBool = errors.New(`expected "true" or "false"`)

// StringBool is a boolean that WebPurify sends as the string "true" or "false".
// Native JSON booleans are rejected.
type StringBool bool

func (b StringBool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b StringBool) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

func (b *StringBool) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w, got %s", ErrInvalidStringBool, data)
	}
	switch s {
	case "true":
		*b = true
	case "false":
		*b = false
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidStringBool, s)
	}
	return nil
}

// Envelope is the top level object of check and replace responses.
type Envelope struct {
	Rsp *Rsp `json:"rsp"`
}

// Rsp carries the status attributes, an optional error and the method specific fields.
type Rsp struct {
	Attributes *RspAttributes `json:"@attributes,omitempty"`
	Err        *RspErr        `json:"err,omitempty"`
	Method     *string        `json:"method,omitempty"`
	// Found is the number of matches, as a string of digits.
	Found *string `json:"found,omitempty"`
	Text  *string `json:"text,omitempty"`
}

type RspAttributes struct {
	Stat string `json:"stat"`
}

type RspErr struct {
	Attributes *RspErrAttributes `json:"@attributes,omitempty"`
}

type RspErrAttributes struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// SentimentSegment is the polarity WebPurify assigned to one segment of the text.
type SentimentSegment struct {
	Text     string `json:"text"`
	Polarity string `json:"polarity"`
}

// SmartScreenResponse is the flat smart screen object. The boolean flags are pointers so a
// missing key can be told apart from "false". Rsp is only set when the service answers
// with the regular envelope instead, which it does for authentication failures.
type SmartScreenResponse struct {
	Rsp *Rsp `json:"rsp,omitempty"`

	Bigotry          *StringBool `json:"bigotry,omitempty"`
	PersonalAttack   *StringBool `json:"personal_attack,omitempty"`
	SexualAdvances   *StringBool `json:"sexual_advances,omitempty"`
	CriminalActivity *StringBool `json:"criminal_activity,omitempty"`
	ExternalContact  *StringBool `json:"external_contact,omitempty"`
	Profanity        *StringBool `json:"profanity,omitempty"`

	ProfanityFound []string `json:"profanity_found,omitempty"`
	ReplaceText    *string  `json:"replace_text,omitempty"`

	// Topics is only sent when topics=true was requested.
	Topics []string `json:"topics,omitempty"`

	// OverallSentiment and Sentiment are only sent when sentiment=true was requested.
	OverallSentiment *string            `json:"overall_sentiment,omitempty"`
	Sentiment        []SentimentSegment `json:"sentiment,omitempty"`
}
