package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	webpurify "github.com/embarkstudios/webpurify-go"
)

// sorry for the bad language, webpurify should also flag the phone number and the email
const defaultText = "fuck you man! call me at +46123123123 or email me at some.name@example.com"

func main() {
	// Get API key from environment
	apiKey := os.Getenv("WEBPURIFY_API_KEY")
	if apiKey == "" {
		log.Fatal("WEBPURIFY_API_KEY environment variable is required")
	}

	region := webpurify.RegionES
	if name := os.Getenv("WEBPURIFY_REGION"); name != "" {
		var ok bool
		if region, ok = webpurify.ParseRegion(name); !ok {
			log.Fatalf("unknown WEBPURIFY_REGION %q, expected one of us, eu, ap, es", name)
		}
	}

	if len(os.Args) < 2 {
		log.Fatalf("usage: %s check|replace|smartscreen [text]", os.Args[0])
	}
	command := os.Args[1]
	text := defaultText
	if len(os.Args) > 2 {
		text = strings.Join(os.Args[2:], " ")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	client, err := webpurify.New(
		webpurify.WithAPIKey(apiKey),
		webpurify.WithRegion(region),
		webpurify.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	fmt.Printf("Calling WebPurify (%s region) with: %q\n", region, text)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch command {
	case "check":
		found, err := client.Check(ctx, text)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Found bad words: %t\n", found)
	case "replace":
		clean, err := client.Replace(ctx, text, "*")
		if err != nil {
			fail(err)
		}
		fmt.Printf("Replaced: %q\n", clean)
	case "smartscreen":
		result, err := client.SmartScreen(ctx, text, webpurify.SmartScreenOptions{
			ReplaceSymbol: "*",
			Sentiment:     true,
			Topics:        true,
		})
		if err != nil {
			fail(err)
		}
		printSmartScreen(result)
	default:
		log.Fatalf("unknown command %q, expected check, replace or smartscreen", command)
	}
}

func fail(err error) {
	var apiErr *webpurify.APIError
	if errors.As(err, &apiErr) {
		log.Fatalf("WebPurify rejected the call (code %s): %s", apiErr.Code, apiErr.Msg)
	}
	var statusErr *webpurify.StatusError
	if errors.As(err, &statusErr) {
		log.Fatalf("WebPurify returned HTTP %d", statusErr.StatusCode)
	}
	log.Fatalf("Call failed: %v", err)
}

func printSmartScreen(r *webpurify.SmartScreenResult) {
	fmt.Printf("Bigotry:           %t\n", r.Bigotry)
	fmt.Printf("Personal attack:   %t\n", r.PersonalAttack)
	fmt.Printf("Sexual advances:   %t\n", r.SexualAdvances)
	fmt.Printf("Criminal activity: %t\n", r.CriminalActivity)
	fmt.Printf("External contact:  %t\n", r.ExternalContact)
	fmt.Printf("Profanity:         %t\n", r.Profanity)

	if len(r.ProfanityFound) > 0 {
		fmt.Printf("Profanity found:   %s\n", strings.Join(r.ProfanityFound, ", "))
	}
	if r.ReplaceText != nil {
		fmt.Printf("Replaced:          %q\n", *r.ReplaceText)
	}
	if len(r.Topics) > 0 {
		fmt.Printf("Topics:            %s\n", strings.Join(r.Topics, ", "))
	}
	if r.OverallSentiment != nil {
		fmt.Printf("Overall sentiment: %s\n", *r.OverallSentiment)
	}
	for _, s := range r.Sentiment {
		fmt.Printf("  %-10s %q\n", s.Polarity, s.Text)
	}
}
