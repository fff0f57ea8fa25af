// Package formatting renders gmsaas payloads into the stable, human-readable
// summaries returned to MCP callers.
//
// Every function is pure and total: a missing field renders as the "Unknown"
// placeholder, an empty listing renders as a fixed "none found" text, and a
// payload of an unexpected shape renders as a raw echo. Field order is fixed
// per record type so output stays stable even when gmsaas adds fields.
package formatting

import (
	"fmt"
	"strings"

	"gmotion/internal/gmsaas"
)

// RecipeList renders the full recipe catalog.
func RecipeList(payload any) string {
	if payload == nil {
		return "No recipes found."
	}
	recipes, ok := gmsaas.AsList(payload)
	if !ok {
		return fmt.Sprintf("Recipes information: %v", payload)
	}
	if len(recipes) == 0 {
		return "No recipes found."
	}

	var b strings.Builder
	b.WriteString("Available recipes:\n")
	for _, recipe := range recipes {
		fmt.Fprintf(&b, "- Name: %s\n", recipe.Field("name"))
		fmt.Fprintf(&b, "  UUID: %s\n", recipe.Field("uuid"))
		fmt.Fprintf(&b, "  OS Version: %s\n", recipe.Field("os_version"))
		b.WriteString("\n")
	}
	return b.String()
}

// InstanceList renders the running instances with their state.
func InstanceList(payload any) string {
	if payload == nil {
		return "No running instances found."
	}
	instances, ok := gmsaas.AsList(payload)
	if !ok {
		return fmt.Sprintf("Instances information: %v", payload)
	}
	if len(instances) == 0 {
		return "No running instances found."
	}

	var b strings.Builder
	b.WriteString("Running instances:\n")
	for _, instance := range instances {
		fmt.Fprintf(&b, "- Name: %s\n", instance.Field("name"))
		fmt.Fprintf(&b, "  UUID: %s\n", instance.Field("uuid"))
		fmt.Fprintf(&b, "  State: %s\n", instance.Field("state"))
		b.WriteString("\n")
	}
	return b.String()
}

// StartResult renders a freshly started instance, including the recipe
// details when the response nests them.
func StartResult(instanceName string, instance gmsaas.Object) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Instance '%s' started successfully!\n", instanceName)
	fmt.Fprintf(&b, "UUID: %s\n", instance.Field("uuid"))
	fmt.Fprintf(&b, "State: %s\n", instance.Field("state"))
	fmt.Fprintf(&b, "ADB Serial: %s\n", instance.Field("adb_serial"))

	if recipe, ok := instance.Child("recipe"); ok {
		b.WriteString("\nDevice Details:\n")
		fmt.Fprintf(&b, "- Name: %s\n", recipe.Field("name"))
		fmt.Fprintf(&b, "- Android Version: %s\n", recipe.Field("android_version"))
		fmt.Fprintf(&b, "- Screen: %s\n", recipe.Field("screen"))
	}
	return b.String()
}

// SearchResults renders the recipes matching a search query, numbered for
// selection. Search entries show the android_version field, not os_version;
// that mirrors what gmsaas reports in each context.
func SearchResults(query string, matches []gmsaas.Object) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d recipes matching '%s':\n\n", len(matches), query)
	for i, recipe := range matches {
		fmt.Fprintf(&b, "%d. Name: %s\n", i+1, recipe.Field("name"))
		fmt.Fprintf(&b, "   UUID: %s\n", recipe.Field("uuid"))
		fmt.Fprintf(&b, "   OS Version: %s\n", recipe.Field("android_version"))
		b.WriteString("\n")
	}
	b.WriteString("Please choose a recipe by providing its UUID for starting your instance.")
	return b.String()
}

// SearchNoMatches names the query and appends the full unfiltered catalog,
// so the caller always has something actionable to pick from.
func SearchNoMatches(query string, payload any) string {
	return fmt.Sprintf("No recipes found matching '%s'. Here are all available recipes:\n\n%s",
		query, RecipeList(payload))
}

// OSVersions renders the distinct OS version of every available image.
func OSVersions(payload any) string {
	images, ok := gmsaas.AsList(payload)
	if !ok || len(images) == 0 {
		return "No Android OS versions found."
	}

	var b strings.Builder
	b.WriteString("Available Android OS versions:\n")
	for _, image := range images {
		fmt.Fprintf(&b, "- %s\n", image.Field("os_version"))
	}
	return b.String()
}
