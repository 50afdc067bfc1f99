package testutils

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/areknoster/hypert"
)

// ShouldUpdate returns true if tests should record fresh HTTP responses
// Set UPDATE_TESTS=true environment variable to update cached responses
func ShouldUpdate() bool {
	return os.Getenv("UPDATE_TESTS") == "true"
}

// APIKey returns the key from WEBPURIFY_API_KEY. Recordings are matched on the
// full query string, so replaying needs the same key that recorded them.
func APIKey() string {
	return os.Getenv("WEBPURIFY_API_KEY")
}

// HasRecordings reports whether dir holds any recorded request/response pairs.
func HasRecordings(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}

// NewHypertClient returns an *http.Client that records WebPurify calls into
// testDataDir/subDir when UPDATE_TESTS=true and replays them otherwise.
// Tests are skipped when there is nothing to replay or no key is set.
func NewHypertClient(t *testing.T, testDataDir, subDir string) *http.Client {
	t.Helper()

	dir := filepath.Join(testDataDir, subDir)
	if !ShouldUpdate() && !HasRecordings(dir) {
		t.Skipf("no recordings in %s, run with UPDATE_TESTS=true and WEBPURIFY_API_KEY set to record", dir)
	}
	if APIKey() == "" {
		t.Skip("WEBPURIFY_API_KEY is not set")
	}

	namingScheme, err := hypert.NewContentHashNamingScheme(dir)
	if err != nil {
		t.Fatalf("failed to create naming scheme: %v", err)
	}

	return hypert.TestClient(t, ShouldUpdate(),
		hypert.WithNamingScheme(namingScheme),
		hypert.WithRequestValidator(hypert.ComposedRequestValidator(
			hypert.PathValidator(),
			hypert.QueryParamsValidator(),
			hypert.MethodValidator(),
		)),
	)
}
