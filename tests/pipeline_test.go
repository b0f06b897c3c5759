package tests

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/lazyrop/pkg/outcome/chain"
	"github.com/ib-77/lazyrop/pkg/outcome/deferred"
)

// TestURLProcessing runs the whole URL pipeline lazily: every chain is built
// up front and nothing is fetched until the final collapsing pass.
func TestURLProcessing(t *testing.T) {
	urls := []string{
		// Valid URLs by structure (we won't actually fetch them)
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",

		// Invalid URLs by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	fetches := 0
	pipelines := make([]chain.Chain[int], 0, len(urls))
	for _, url := range urls {
		pipelines = append(pipelines, titleLengthPipeline(url, &fetches))
	}

	// building the pipelines must not have fetched anything
	require.Equal(t, 0, fetches)

	results := make([]string, 0, len(pipelines))
	for _, p := range pipelines {
		// Finally cannot change the value type (Go methods take no extra type
		// parameters), so map to string first and collapse with identity.
		sp := chain.Start(deferred.Map(p.Deferred(), func(n int) string {
			return fmt.Sprintf("title length: %d", n)
		}))
		results = append(results, sp.Finally(
			func(s string) string { return s },
			func(err error) string { return "invalid" },
		))
	}

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}

	assert.Equal(t, len(urls), len(results))
	assert.Equal(t, 2, invalidCount)
	// only the structurally valid URLs were fetched, each exactly once
	assert.Equal(t, 3, fetches)
}

func TestURLProcessing_ForcingTwiceFetchesOnce(t *testing.T) {
	fetches := 0
	p := titleLengthPipeline("https://www.example.com", &fetches)

	first, err := p.Get()
	require.NoError(t, err)

	second, err := p.Get()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetches)
}

func TestURLProcessing_RecoveryFallsBackToCachedTitle(t *testing.T) {
	fetches := 0
	p := titleLengthPipeline("invalid-url", &fetches).
		Recover(func(err error) (int, error) {
			return len("cached title"), nil
		})

	n, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, len("cached title"), n)
	assert.Equal(t, 0, fetches)
}

func titleLengthPipeline(url string, fetches *int) chain.Chain[int] {
	validated := chain.FromValue(url).
		Validate(validateURL).
		Then(func(u string) (string, error) {
			return mockFetchTitle(u, fetches)
		})

	return chain.Start(deferred.Map(validated.Deferred(), func(title string) int {
		return len(title)
	}))
}

// mockFetchTitle simulates fetching a title without making HTTP requests
func mockFetchTitle(url string, fetches *int) (string, error) {
	*fetches++
	return "Mock Page Title for " + url, nil
}

func validateURL(url string) (bool, string) {
	// Simple validation: check if URL starts with http:// or https://
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}
