package webpurify

import (
	"encoding/json"

	"github.com/embarkstudios/webpurify-go/internal"
)

// Region selects which of the WebPurify API endpoints a request is sent to.
type Region uint8

const (
	// RegionUS is the primary endpoint and the zero value.
	RegionUS Region = iota
	// RegionEurope is the EU hosted endpoint.
	RegionEurope
	// RegionAsia is the Asia-Pacific hosted endpoint.
	RegionAsia
	// RegionES is the ES endpoint.
	RegionES
)

// Endpoint returns the base URL for the region. It returns an empty string for values
// outside the defined set, which makes request building fail with ErrInvalidURI.
func (r Region) Endpoint() string {
	switch r {
	case RegionUS:
		return "https://api1.webpurify.com/services/rest/"
	case RegionEurope:
		return "https://api1-eu.webpurify.com/services/rest/"
	case RegionAsia:
		return "https://api1-ap.webpurify.com/services/rest/"
	case RegionES:
		return "https://es-api.webpurify.net/services/rest/"
	}
	return ""
}

// String returns the short name of the region as accepted by ParseRegion.
func (r Region) String() string {
	switch r {
	case RegionUS:
		return "us"
	case RegionEurope:
		return "eu"
	case RegionAsia:
		return "ap"
	case RegionES:
		return "es"
	}
	return "unknown"
}

// ParseRegion returns the region for a short name ("us", "eu", "ap" or "es").
func ParseRegion(s string) (Region, bool) {
	switch s {
	case "us":
		return RegionUS, true
	case "eu":
		return RegionEurope, true
	case "ap":
		return RegionAsia, true
	case "es":
		return RegionES, true
	}
	return RegionUS, false
}

// Remote method identifiers, as sent in the method query parameter and echoed back in rsp.method.
const (
	MethodCheck       = "webpurify.live.check"
	MethodReplace     = "webpurify.live.replace"
	MethodSmartScreen = "webpurify.live.smartscreen"
)

// Method is the remote operation to invoke. It is implemented by Check, Replace and
// SmartScreen only.
type Method interface {
	isMethod()
}

// Check asks whether the text contains profanity or flagged contact details.
type Check struct{}

// Replace asks WebPurify to mask every match in the text with ReplaceSymbol.
type Replace struct {
	ReplaceSymbol string
}

// SmartScreen runs the composite classification. Sentiment and Topics request the
// optional analysis blocks of the result.
type SmartScreen struct {
	ReplaceSymbol string
	Sentiment     bool
	Topics        bool
}

func (Check) isMethod()       {}
func (Replace) isMethod()     {}
func (SmartScreen) isMethod() {}

// MethodName returns the remote identifier for m.
func MethodName(m Method) string {
	switch m.(type) {
	case Check, *Check:
		return MethodCheck
	case Replace, *Replace:
		return MethodReplace
	case SmartScreen, *SmartScreen:
		return MethodSmartScreen
	}
	panic("webpurify: unknown method")
}

// SmartScreenOptions configures a smart screen call made through the Client.
type SmartScreenOptions struct {
	// ReplaceSymbol is used to build ReplaceText in the result.
	ReplaceSymbol string
	// Sentiment requests OverallSentiment and Sentiment in the result.
	Sentiment bool
	// Topics requests Topics in the result.
	Topics bool
}

// SentimentSegment is a piece of the screened text and its polarity, e.g. "negative".
type SentimentSegment struct {
	Text     string
	Polarity string
}

// SmartScreenResult is the classification WebPurify returns for a smart screen call.
type SmartScreenResult struct {
	Bigotry          bool
	PersonalAttack   bool
	SexualAdvances   bool
	CriminalActivity bool
	ExternalContact  bool
	Profanity        bool

	// ProfanityFound lists the matched words. Nil when the service did not send it.
	ProfanityFound []string
	// ReplaceText is the text with matches masked. Nil when the service did not send it.
	ReplaceText *string

	// Topics is only set when topics were requested.
	Topics []string

	// OverallSentiment is only set when sentiment was requested.
	OverallSentiment *string
	// Sentiment is only set when sentiment was requested.
	Sentiment []SentimentSegment
}

func (r *SmartScreenResult) fromWire(w *internal.SmartScreenResponse) (*SmartScreenResult, error) {
	flags := []struct {
		name string
		src  *internal.StringBool
		dst  *bool
	}{
		{"bigotry", w.Bigotry, &r.Bigotry},
		{"personal_attack", w.PersonalAttack, &r.PersonalAttack},
		{"sexual_advances", w.SexualAdvances, &r.SexualAdvances},
		{"criminal_activity", w.CriminalActivity, &r.CriminalActivity},
		{"external_contact", w.ExternalContact, &r.ExternalContact},
		{"profanity", w.Profanity, &r.Profanity},
	}
	for _, f := range flags {
		if f.src == nil {
			return nil, &FieldError{Field: f.name, Err: ErrMissingField}
		}
		*f.dst = bool(*f.src)
	}

	r.ProfanityFound = w.ProfanityFound
	r.ReplaceText = w.ReplaceText
	r.Topics = w.Topics
	r.OverallSentiment = w.OverallSentiment
	if w.Sentiment != nil {
		r.Sentiment = make([]SentimentSegment, len(w.Sentiment))
		for i, s := range w.Sentiment {
			r.Sentiment[i] = SentimentSegment{Text: s.Text, Polarity: s.Polarity}
		}
	}
	return r, nil
}

func (r *SmartScreenResult) toWire() *internal.SmartScreenResponse {
	flag := func(b bool) *internal.StringBool {
		sb := internal.StringBool(b)
		return &sb
	}

	w := &internal.SmartScreenResponse{
		Bigotry:          flag(r.Bigotry),
		PersonalAttack:   flag(r.PersonalAttack),
		SexualAdvances:   flag(r.SexualAdvances),
		CriminalActivity: flag(r.CriminalActivity),
		ExternalContact:  flag(r.ExternalContact),
		Profanity:        flag(r.Profanity),
		ProfanityFound:   r.ProfanityFound,
		ReplaceText:      r.ReplaceText,
		Topics:           r.Topics,
		OverallSentiment: r.OverallSentiment,
	}
	if r.Sentiment != nil {
		w.Sentiment = make([]internal.SentimentSegment, len(r.Sentiment))
		for i, s := range r.Sentiment {
			w.Sentiment[i] = internal.SentimentSegment{Text: s.Text, Polarity: s.Polarity}
		}
	}
	return w
}

// MarshalJSON encodes the result in the shape WebPurify sends it, flags as "true"/"false" strings.
func (r SmartScreenResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}

// UnmarshalJSON decodes the WebPurify smart screen shape. It does not check for an
// error envelope; use ParseSmartScreenResult for responses straight off the wire.
func (r *SmartScreenResult) UnmarshalJSON(data []byte) error {
	var w internal.SmartScreenResponse
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	_, err := r.fromWire(&w)
	return err
}
