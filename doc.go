// Package webpurify is a Go client for the WebPurify content moderation API.
//
// WebPurify screens user generated text for profanity, contact details (emails, links,
// phone numbers) and, with smart screen, for bigotry, personal attacks, sexual advances
// and criminal activity. This package builds the requests WebPurify expects and turns its
// responses into typed results and errors.
//
// # Quick Start
//
//	client, err := webpurify.New(
//		webpurify.WithAPIKey("your-api-key"),
//		webpurify.WithRegion(webpurify.RegionEurope),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	flagged, err := client.Check(context.Background(), "user input")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Bring Your Own Transport
//
// The Client is a convenience. The request builders and response parsers are plain
// functions, so the HTTP call itself can go through any client:
//
//	req, err := webpurify.ProfanityReplaceRequest(ctx, apiKey, webpurify.RegionUS, text, "*")
//	if err != nil {
//		return err
//	}
//	resp, err := myHTTPClient.Do(req)
//	if err != nil {
//		return err
//	}
//	defer resp.Body.Close()
//
//	clean, err := webpurify.ProfanityReplaceResult(resp)
//
// ParseCheckResult, ParseReplaceResult and ParseSmartScreenResult take a status code and
// body directly for transports that do not produce an *http.Response.
//
// # Error Handling
//
// Nothing is retried. Every error is returned to the caller and can be inspected with
// errors.Is for its kind and errors.As for its details:
//
//	clean, err := client.Replace(ctx, text, "*")
//	switch {
//	case errors.Is(err, webpurify.ErrInvalidAPIKey):
//		// The key was rejected
//	case errors.Is(err, webpurify.ErrHTTPStatus):
//		var statusErr *webpurify.StatusError
//		errors.As(err, &statusErr)
//		log.Printf("webpurify returned %d", statusErr.StatusCode)
//	}
//
// Responses are validated strictly: an embedded error object, a stat other than "ok" and
// a method that does not match the parser are all reported as errors.
package webpurify
