package cmd

import (
	"reflect"
	"testing"

	"github.com/msalah0e/gmaps/internal/apierr"
	"github.com/msalah0e/gmaps/internal/config"
	"github.com/spf13/cobra"
)

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		input    string
		lat, lng float64
	}{
		{"37.7749,-122.4194", 37.7749, -122.4194},
		{"37.7749, -122.4194", 37.7749, -122.4194},
		{" 0 , 0 ", 0, 0},
		{"-90,180", -90, 180},
		{"52,13", 52, 13},
	}

	for _, tt := range tests {
		lat, lng, err := parseLatLng(tt.input)
		if err != nil {
			t.Errorf("parseLatLng(%q) returned error: %v", tt.input, err)
			continue
		}
		if lat != tt.lat || lng != tt.lng {
			t.Errorf("parseLatLng(%q) = %v,%v, want %v,%v", tt.input, lat, lng, tt.lat, tt.lng)
		}
	}
}

func TestParseLatLng_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"37.7749",
		"37.7749,-122.4194,0",
		"north,west",
		"37.7749,west",
		"91,0",
		"-91,0",
		"0,181",
		"0,-181",
	}

	for _, input := range inputs {
		_, _, err := parseLatLng(input)
		if err == nil {
			t.Errorf("parseLatLng(%q) succeeded, want error", input)
			continue
		}
		if !apierr.IsKind(err, apierr.InvalidArguments) {
			t.Errorf("parseLatLng(%q) kind = %v, want invalid_arguments", input, apierr.KindOf(err))
		}
	}
}

func TestSplitPipes(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"a|b|c", []string{"a", "b", "c"}},
		{"San Francisco, CA|Oakland, CA", []string{"San Francisco, CA", "Oakland, CA"}},
		{" a | b ", []string{"a", "b"}},
		{"a||b", []string{"a", "b"}},
		{"single", []string{"single"}},
		{"", nil},
		{"|", nil},
	}

	for _, tt := range tests {
		result := splitPipes(tt.input)
		if len(result) == 0 && len(tt.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("splitPipes(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestMapsURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"37.7749,-122.4194", "https://www.google.com/maps?q=37.7749,-122.4194"},
		{"0,0", "https://www.google.com/maps?q=0,0"},
		{"Eiffel Tower", "https://www.google.com/maps/search/?api=1&query=Eiffel+Tower"},
		{"ChIJN1t_tDeuEmsRUsoyG83frY4", "https://www.google.com/maps/search/?api=1&query=ChIJN1t_tDeuEmsRUsoyG83frY4"},
	}

	for _, tt := range tests {
		result := mapsURL(tt.input)
		if result != tt.expected {
			t.Errorf("mapsURL(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func newFlagsCmd() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	c.Flags().Int("max", 10, "")
	c.Flags().String("language", "", "")
	c.Flags().String("region", "", "")
	c.Flags().String("units", "metric", "")
	return c
}

func TestApplyDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.Default()
	cfg.Defaults.Language = "de"
	cfg.Defaults.Region = "de"
	cfg.Defaults.MaxResults = 25
	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	c := newFlagsCmd()
	maxResults := 10
	language := ""
	region := ""
	applyDefaults(c, &maxResults, &language, &region)

	if maxResults != 25 {
		t.Errorf("maxResults = %d, want config default 25", maxResults)
	}
	if language != "de" {
		t.Errorf("language = %q, want config default \"de\"", language)
	}
	if region != "de" {
		t.Errorf("region = %q, want config default \"de\"", region)
	}
}

func TestApplyDefaults_FlagWins(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.Default()
	cfg.Defaults.Language = "de"
	cfg.Defaults.MaxResults = 25
	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	c := newFlagsCmd()
	if err := c.Flags().Set("max", "3"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	maxResults := 3
	language := "fr"
	applyDefaults(c, &maxResults, &language, nil)

	if maxResults != 3 {
		t.Errorf("maxResults = %d, want explicit 3", maxResults)
	}
	if language != "fr" {
		t.Errorf("language = %q, want explicit \"fr\"", language)
	}
}

func TestApplyDefaults_NilPointersSkipped(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Should not panic
	applyDefaults(newFlagsCmd(), nil, nil, nil)
}

func TestDefaultUnits(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.Default()
	cfg.Defaults.Units = "imperial"
	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	c := newFlagsCmd()
	if got := defaultUnits(c, "metric"); got != "imperial" {
		t.Errorf("defaultUnits = %q, want config value \"imperial\"", got)
	}

	if err := c.Flags().Set("units", "metric"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := defaultUnits(c, "metric"); got != "metric" {
		t.Errorf("defaultUnits = %q, want explicit \"metric\"", got)
	}
}

func TestMustChoice_Accepts(t *testing.T) {
	// Empty means the flag was not given; valid values pass silently.
	mustChoice("mode", "", "driving", "walking")
	mustChoice("mode", "driving", "driving", "walking")
	mustChoice("mode", "walking", "driving", "walking")
}
