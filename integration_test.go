package webpurify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embarkstudios/webpurify-go/internal/testutils"
)

const integrationText = "fuck you man! call me at +46123123123 or email me at some.name@example.com"

// TestClient_Integration runs the client against WebPurify. Requests are replayed from
// testdata with hypert, set UPDATE_TESTS=true and WEBPURIFY_API_KEY to record them.
func TestClient_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	newClient := func(t *testing.T, subDir string) *Client {
		client, err := New(
			WithAPIKey(testutils.APIKey()),
			WithRegion(RegionES),
			WithHTTPClient(testutils.NewHypertClient(t, "testdata", subDir)),
		)
		require.NoError(t, err)
		return client
	}

	t.Run("check", func(t *testing.T) {
		client := newClient(t, "check")

		found, err := client.Check(ctx, integrationText)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("replace", func(t *testing.T) {
		client := newClient(t, "replace")

		clean, err := client.Replace(ctx, integrationText, "*")
		require.NoError(t, err)
		assert.NotContains(t, clean, "fuck")
		assert.NotContains(t, clean, "some.name@example.com")
	})

	t.Run("smart screen", func(t *testing.T) {
		client := newClient(t, "smartscreen")

		result, err := client.SmartScreen(ctx, integrationText, SmartScreenOptions{
			ReplaceSymbol: "*",
			Sentiment:     true,
			Topics:        true,
		})
		require.NoError(t, err)
		assert.True(t, result.Profanity)
		assert.NotEmpty(t, result.ProfanityFound)
	})
}
