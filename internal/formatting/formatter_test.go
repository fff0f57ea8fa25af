package formatting

import (
	"strings"
	"testing"

	"gmotion/internal/gmsaas"

	"github.com/stretchr/testify/assert"
)

func TestRecipeList(t *testing.T) {
	payload := []any{
		map[string]any{"name": "Pixel 7", "uuid": "r-1", "os_version": "13.0"},
		map[string]any{"uuid": "r-2"},
	}

	out := RecipeList(payload)
	assert.True(t, strings.HasPrefix(out, "Available recipes:\n"))
	assert.Contains(t, out, "- Name: Pixel 7\n  UUID: r-1\n  OS Version: 13.0\n")
	// Missing descriptive fields render as the placeholder, not an error.
	assert.Contains(t, out, "- Name: Unknown\n  UUID: r-2\n  OS Version: Unknown\n")
}

func TestRecipeList_Empty(t *testing.T) {
	assert.Equal(t, "No recipes found.", RecipeList([]any{}))
	assert.Equal(t, "No recipes found.", RecipeList(nil))
}

func TestRecipeList_NonListPayload(t *testing.T) {
	out := RecipeList(map[string]any{"note": "maintenance"})
	assert.Contains(t, out, "Recipes information:")
}

func TestInstanceList(t *testing.T) {
	payload := []any{
		map[string]any{"name": "dev", "uuid": "i-1", "state": "ONLINE"},
	}

	out := InstanceList(payload)
	assert.True(t, strings.HasPrefix(out, "Running instances:\n"))
	assert.Contains(t, out, "- Name: dev\n  UUID: i-1\n  State: ONLINE\n")
}

func TestInstanceList_Empty(t *testing.T) {
	assert.Equal(t, "No running instances found.", InstanceList([]any{}))
	assert.Equal(t, "No running instances found.", InstanceList(nil))
}

func TestStartResult_WithUnknownSerial(t *testing.T) {
	instance := gmsaas.Object{
		"uuid":       "u1",
		"state":      "running",
		"adb_serial": "Unknown",
	}

	out := StartResult("dev", instance)
	assert.Contains(t, out, "Instance 'dev' started successfully!")
	assert.Contains(t, out, "UUID: u1")
	assert.Contains(t, out, "State: running")
	assert.Contains(t, out, "ADB Serial: Unknown")
	assert.NotContains(t, out, "Device Details:")
}

func TestStartResult_WithRecipeDetails(t *testing.T) {
	instance := gmsaas.Object{
		"uuid":  "u1",
		"state": "BOOTING",
		"recipe": map[string]any{
			"name":            "Pixel 7",
			"android_version": "13.0",
			"screen":          "1080x2400",
		},
	}

	out := StartResult("dev", instance)
	assert.Contains(t, out, "Device Details:")
	assert.Contains(t, out, "- Name: Pixel 7")
	assert.Contains(t, out, "- Android Version: 13.0")
	assert.Contains(t, out, "- Screen: 1080x2400")
	// adb_serial was absent entirely; the placeholder still renders.
	assert.Contains(t, out, "ADB Serial: Unknown")
}

func TestSearchResults(t *testing.T) {
	matches := []gmsaas.Object{
		{"name": "Pixel", "uuid": "r-1", "android_version": "9.0"},
		{"name": "Nine9", "uuid": "r-2", "android_version": "8.0"},
	}

	out := SearchResults("9", matches)
	assert.Contains(t, out, "Found 2 recipes matching '9':")
	assert.Contains(t, out, "1. Name: Pixel\n   UUID: r-1\n   OS Version: 9.0\n")
	assert.Contains(t, out, "2. Name: Nine9\n   UUID: r-2\n   OS Version: 8.0\n")
	assert.Contains(t, out, "Please choose a recipe by providing its UUID")
}

func TestSearchNoMatches_AppendsFullListing(t *testing.T) {
	payload := []any{
		map[string]any{"name": "Pixel 7", "uuid": "r-1", "os_version": "13.0"},
	}

	out := SearchNoMatches("zzz", payload)
	assert.Contains(t, out, "No recipes found matching 'zzz'.")
	assert.Contains(t, out, "Available recipes:")
	assert.Contains(t, out, "- Name: Pixel 7")
}

func TestOSVersions(t *testing.T) {
	payload := []any{
		map[string]any{"os_version": "12.0"},
		map[string]any{"os_version": "13.0"},
	}

	out := OSVersions(payload)
	assert.Equal(t, "Available Android OS versions:\n- 12.0\n- 13.0\n", out)
}

func TestOSVersions_Empty(t *testing.T) {
	assert.Equal(t, "No Android OS versions found.", OSVersions([]any{}))
	assert.Equal(t, "No Android OS versions found.", OSVersions(nil))
}
