//go:build e2e

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	gmapsBin string
	apiBase  string
)

const deniedBody = `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`

func fakeMaps() http.Handler {
	mux := http.NewServeMux()

	serve := func(pattern, body string) {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Query().Get("key") == "revoked-key" {
				fmt.Fprint(w, deniedBody)
				return
			}
			fmt.Fprint(w, body)
		})
	}

	serve("/place/textsearch/json", `{"status":"OK","results":[
		{"name":"Blue Bottle Coffee","place_id":"pid-blue","formatted_address":"66 Mint St, San Francisco","rating":4.5,"user_ratings_total":1200,"geometry":{"location":{"lat":37.7823,"lng":-122.4076}}},
		{"name":"Sightglass Coffee","place_id":"pid-sight","formatted_address":"270 7th St, San Francisco","rating":4.4,"user_ratings_total":900,"geometry":{"location":{"lat":37.7766,"lng":-122.4088}}}]}`)
	serve("/place/nearbysearch/json", `{"status":"OK","results":[
		{"name":"Blue Bottle Coffee","place_id":"pid-blue","vicinity":"66 Mint St","rating":4.5,"geometry":{"location":{"lat":37.7823,"lng":-122.4076}}}]}`)
	serve("/place/details/json", `{"status":"OK","result":{"name":"Blue Bottle Coffee","place_id":"pid-blue","formatted_address":"66 Mint St, San Francisco","rating":4.5,"user_ratings_total":1200,"formatted_phone_number":"(510) 653-3394","website":"https://bluebottlecoffee.com","opening_hours":{"open_now":true},"types":["cafe","food"]}}`)
	serve("/place/autocomplete/json", `{"status":"OK","predictions":[
		{"description":"Berlin, Germany","place_id":"pid-berlin"},
		{"description":"Berlingen, Switzerland","place_id":"pid-berlingen"}]}`)
	serve("/directions/json", `{"status":"OK","routes":[{"summary":"I-80 W","legs":[{"start_address":"San Francisco, CA, USA","end_address":"Oakland, CA, USA","distance":{"text":"15 km","value":15000},"duration":{"text":"20 min","value":1200},"steps":[{"html_instructions":"Head <b>west</b>","distance":{"value":500},"duration":{"value":60},"travel_mode":"DRIVING"}]}]}]}`)
	serve("/distancematrix/json", `{"status":"OK","origin_addresses":["San Francisco, CA, USA"],"destination_addresses":["Oakland, CA, USA"],"rows":[{"elements":[{"status":"OK","distance":{"value":15000},"duration":{"value":1200}}]}]}`)
	// The Time Zone API answers by location so the over-water flow is
	// reachable.
	mux.HandleFunc("/timezone/json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		q := r.URL.Query()
		if q.Get("key") == "revoked-key" {
			fmt.Fprint(w, deniedBody)
			return
		}
		if q.Get("location") == "0,0" {
			fmt.Fprint(w, `{"status":"ZERO_RESULTS"}`)
			return
		}
		fmt.Fprint(w, `{"status":"OK","timeZoneId":"America/Los_Angeles","timeZoneName":"Pacific Daylight Time","rawOffset":-28800,"dstOffset":3600}`)
	})
	serve("/elevation/json", `{"status":"OK","results":[{"elevation":16.62,"location":{"lat":37.7749,"lng":-122.4194},"resolution":9.54}]}`)

	// Geocoding answers by address so not-found flows are reachable.
	mux.HandleFunc("/geocode/json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		q := r.URL.Query()
		if q.Get("key") == "revoked-key" {
			fmt.Fprint(w, deniedBody)
			return
		}
		if q.Get("address") == "nowhere at all" {
			fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
			return
		}
		fmt.Fprint(w, `{"status":"OK","results":[{"formatted_address":"New York, NY, USA","place_id":"pid-nyc","geometry":{"location":{"lat":40.7128,"lng":-74.006}}}]}`)
	})

	return mux
}

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "gmaps-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}
	defer os.RemoveAll(tmp)

	gmapsBin = filepath.Join(tmp, "gmaps")
	build := exec.Command("go", "build", "-ldflags", "-X github.com/msalah0e/gmaps/cmd.version=1.1.0-test", "-o", gmapsBin, ".")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		panic("failed to build gmaps: " + err.Error())
	}

	srv := httptest.NewServer(fakeMaps())
	defer srv.Close()
	apiBase = srv.URL

	os.Exit(m.Run())
}

// runGmaps executes the gmaps binary against the fake API with its state
// rooted in home, so multi-step flows can share one home directory.
func runGmaps(t *testing.T, home string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	cmd := exec.Command(gmapsBin, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
		"NO_COLOR=1",
		"GMAPS_NO_UPDATE_CHECK=1",
		"GMAPS_BASE_URL="+apiBase,
	)

	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run gmaps %v: %v", args, err)
		}
	}
	return outBuf.String(), errBuf.String(), exitCode
}

// initAccount seeds one verified account in home.
func initAccount(t *testing.T, home string) {
	t.Helper()
	_, errOut, code := runGmaps(t, home, "init", "--key", "test-key-0123456789", "--no-verify")
	if code != 0 {
		t.Fatalf("init failed with exit %d: %s", code, errOut)
	}
}

// --- Core CLI ---

func TestE2E_Version(t *testing.T) {
	out, _, code := runGmaps(t, t.TempDir(), "--version")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "1.1.0-test") {
		t.Errorf("expected version output to contain '1.1.0-test', got %q", out)
	}
}

func TestE2E_Help(t *testing.T) {
	out, _, code := runGmaps(t, t.TempDir(), "--help")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Available Commands") {
		t.Errorf("expected help to contain 'Available Commands', got %q", out)
	}
}

func TestE2E_BareCommand(t *testing.T) {
	out, _, code := runGmaps(t, t.TempDir())
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "gmaps") {
		t.Errorf("expected name in output, got %q", out)
	}
}

// --- Accounts ---

func TestE2E_NoAccountExitsTwo(t *testing.T) {
	_, errOut, code := runGmaps(t, t.TempDir(), "search", "coffee")
	if code != 2 {
		t.Fatalf("expected exit 2 without accounts, got %d", code)
	}
	if !strings.Contains(errOut, "no accounts configured") {
		t.Errorf("expected stderr to explain missing accounts, got %q", errOut)
	}
}

func TestE2E_InitVerifiesKey(t *testing.T) {
	out, _, code := runGmaps(t, t.TempDir(), "init", "--key", "test-key-0123456789")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "API key verified") {
		t.Errorf("expected verification confirmation, got %q", out)
	}
}

func TestE2E_InitBadKeyStillSaves(t *testing.T) {
	home := t.TempDir()
	out, _, code := runGmaps(t, home, "init", "--key", "revoked-key")
	if code != 0 {
		t.Fatalf("init should save the key and warn, got exit %d", code)
	}
	if !strings.Contains(out, "verification failed") {
		t.Errorf("expected verification warning, got %q", out)
	}

	out, _, code = runGmaps(t, home, "accounts")
	if code != 0 || !strings.Contains(out, "default") {
		t.Errorf("expected saved account listed, got exit %d output %q", code, out)
	}
}

func TestE2E_AccountsFlow(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)

	_, _, code := runGmaps(t, home, "accounts", "add", "work", "--key", "work-key-9876543210")
	if code != 0 {
		t.Fatalf("accounts add failed with exit %d", code)
	}

	out, _, code := runGmaps(t, home, "accounts")
	if code != 0 {
		t.Fatalf("accounts failed with exit %d", code)
	}
	if !strings.Contains(out, "default") || !strings.Contains(out, "work") {
		t.Errorf("expected both accounts listed, got %q", out)
	}
	if !strings.Contains(out, "active: default") {
		t.Errorf("expected default active, got %q", out)
	}

	_, _, code = runGmaps(t, home, "use", "work")
	if code != 0 {
		t.Fatalf("use failed with exit %d", code)
	}

	out, _, code = runGmaps(t, home, "me")
	if code != 0 {
		t.Fatalf("me failed with exit %d", code)
	}
	if !strings.Contains(out, "work") {
		t.Errorf("expected active account 'work', got %q", out)
	}
	if strings.Contains(out, "work-key-9876543210") {
		t.Errorf("me must not print the full key, got %q", out)
	}

	_, _, code = runGmaps(t, home, "accounts", "rm", "default")
	if code != 0 {
		t.Fatalf("accounts rm failed with exit %d", code)
	}
	out, _, _ = runGmaps(t, home, "accounts")
	if strings.Contains(out, "default") {
		t.Errorf("expected default removed, got %q", out)
	}
}

func TestE2E_DuplicateAccountName(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	_, errOut, code := runGmaps(t, home, "accounts", "add", "default", "--key", "other-key-111222333")
	if code != 1 {
		t.Fatalf("expected exit 1 for duplicate name, got %d", code)
	}
	if !strings.Contains(errOut, "already exists") {
		t.Errorf("expected duplicate error, got %q", errOut)
	}
}

func TestE2E_UseUnknownAccount(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	_, errOut, code := runGmaps(t, home, "use", "nope")
	if code != 1 {
		t.Fatalf("expected exit 1 for unknown account, got %d", code)
	}
	if !strings.Contains(errOut, "not found") {
		t.Errorf("expected not-found error, got %q", errOut)
	}
}

func TestE2E_AccountOverrideFlag(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	_, _, code := runGmaps(t, home, "accounts", "add", "revoked", "--key", "revoked-key")
	if code != 0 {
		t.Fatalf("accounts add failed with exit %d", code)
	}

	// Active account still works; the override hits the revoked key.
	_, _, code = runGmaps(t, home, "search", "coffee")
	if code != 0 {
		t.Fatalf("search with active account failed with exit %d", code)
	}
	_, errOut, code := runGmaps(t, home, "--account", "revoked", "search", "coffee")
	if code != 2 {
		t.Fatalf("expected exit 2 for denied key, got %d", code)
	}
	if !strings.Contains(errOut, "REQUEST_DENIED") {
		t.Errorf("expected REQUEST_DENIED in error, got %q", errOut)
	}
}

// --- Places ---

func TestE2E_Search(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "search", "coffee")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Found 2 places:") {
		t.Errorf("expected result header, got %q", out)
	}
	if !strings.Contains(out, "1. Blue Bottle Coffee") || !strings.Contains(out, "2. Sightglass Coffee") {
		t.Errorf("expected numbered places, got %q", out)
	}
}

func TestE2E_SearchJSON(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "search", "coffee", "--json")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("expected a JSON array, got %q", out)
	}
	if !strings.Contains(out, `"place_id": "pid-blue"`) {
		t.Errorf("expected raw place payload, got %q", out)
	}
}

func TestE2E_SearchKeys(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "search", "coffee", "--output", "keys")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if out != "pid-blue\npid-sight\n" {
		t.Errorf("keys output must be IDs only, got %q", out)
	}
}

func TestE2E_SearchBadOutputMode(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	_, errOut, code := runGmaps(t, home, "search", "coffee", "--output", "yaml")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "invalid --output") {
		t.Errorf("expected flag validation error, got %q", errOut)
	}
}

func TestE2E_Nearby(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "nearby", "--location", "37.7749,-122.4194")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Found 1 places nearby:") {
		t.Errorf("expected nearby header, got %q", out)
	}
}

func TestE2E_NearbyRequiresLocation(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	_, _, code := runGmaps(t, home, "nearby")
	if code == 0 {
		t.Fatal("expected non-zero exit without --location")
	}
}

func TestE2E_Place(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "place", "pid-blue")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Blue Bottle Coffee") || !strings.Contains(out, "Place ID: pid-blue") {
		t.Errorf("expected place details, got %q", out)
	}
	if !strings.Contains(out, "Status: Open") {
		t.Errorf("expected open status, got %q", out)
	}
}

func TestE2E_Photo(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "photo", "ref-1")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "/place/photo?") || !strings.Contains(out, "maxwidth=400") {
		t.Errorf("expected photo URL with default width, got %q", out)
	}
}

func TestE2E_PhotoMaxHeightOnly(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "photo", "ref-1", "--max-height", "600")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "maxheight=600") {
		t.Errorf("expected maxheight in URL, got %q", out)
	}
	if strings.Contains(out, "maxwidth") {
		t.Errorf("height-only request should not send a width cap, got %q", out)
	}
}

func TestE2E_Autocomplete(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "autocomplete", "berl")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Found 2 suggestions:") || !strings.Contains(out, "Berlin, Germany") {
		t.Errorf("expected suggestions, got %q", out)
	}
}

// --- Geocoding ---

func TestE2E_Geocode(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "geocode", "New York")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "New York, NY, USA") {
		t.Errorf("expected formatted address, got %q", out)
	}
	if !strings.Contains(out, "Coordinates: 40.712800,-74.006000") {
		t.Errorf("expected six-decimal coordinates, got %q", out)
	}
}

func TestE2E_GeocodeNoMatch(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "geocode", "nowhere at all")
	if code != 0 {
		t.Fatalf("zero results is not an error, got exit %d", code)
	}
	if !strings.Contains(out, "Address not found.") {
		t.Errorf("expected not-found message, got %q", out)
	}
}

func TestE2E_Reverse(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "reverse", "40.7128,-74.0060")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "1. New York, NY, USA") {
		t.Errorf("expected reverse result, got %q", out)
	}
}

func TestE2E_ReverseBadCoordinates(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	_, errOut, code := runGmaps(t, home, "reverse", "not-coords")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "invalid coordinates") {
		t.Errorf("expected validation error, got %q", errOut)
	}
}

// --- Routing ---

func TestE2E_Directions(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "directions", "San Francisco", "Oakland")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Route: I-80 W") {
		t.Errorf("expected route summary line, got %q", out)
	}
	if !strings.Contains(out, "Total Distance: 15.0km") || !strings.Contains(out, "Total Duration: 20m") {
		t.Errorf("expected formatted totals, got %q", out)
	}
	if !strings.Contains(out, "Head west") {
		t.Errorf("expected markup stripped from steps, got %q", out)
	}
}

func TestE2E_DirectionsBadMode(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	_, errOut, code := runGmaps(t, home, "directions", "A", "B", "--mode", "teleport")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "invalid --mode") {
		t.Errorf("expected mode validation error, got %q", errOut)
	}
}

func TestE2E_Route(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "route", "San Francisco", "Oakland")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	want := "Distance: 15.0km\nDuration: 20m\nMode: driving\n"
	if out != want {
		t.Errorf("route output = %q, want %q", out, want)
	}
}

func TestE2E_Distance(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "distance", "San Francisco", "Oakland")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Distance Matrix:") {
		t.Errorf("expected matrix header, got %q", out)
	}
	if !strings.Contains(out, "From: San Francisco, CA, USA") || !strings.Contains(out, "To: Oakland, CA, USA") {
		t.Errorf("expected matrix pairing, got %q", out)
	}
}

// --- Utility ---

func TestE2E_Timezone(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "timezone", "37.7749,-122.4194")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Timezone: America/Los_Angeles") {
		t.Errorf("expected timezone id, got %q", out)
	}
	if !strings.Contains(out, "UTC Offset: -8.0 hours") {
		t.Errorf("expected raw offset in hours, got %q", out)
	}
}

func TestE2E_TimezoneOverWater(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, errOut, code := runGmaps(t, home, "timezone", "0,0")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "ZERO_RESULTS") {
		t.Errorf("expected status in error line, got %q", errOut)
	}
	if strings.Contains(out, "Timezone:") {
		t.Errorf("no report should be printed, got %q", out)
	}
}

func TestE2E_Elevation(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "elevation", "37.7749,-122.4194")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Elevation Data (1 points):") {
		t.Errorf("expected elevation header, got %q", out)
	}
	if !strings.Contains(out, "Elevation: 16.62m") {
		t.Errorf("expected formatted elevation, got %q", out)
	}
}

func TestE2E_OpenPrint(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "open", "--print", "Eiffel Tower")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Opening: https://www.google.com/maps/search/?api=1&query=Eiffel+Tower") {
		t.Errorf("expected search URL, got %q", out)
	}
}

// --- Health ---

func TestE2E_Doctor(t *testing.T) {
	home := t.TempDir()
	initAccount(t, home)
	out, _, code := runGmaps(t, home, "doctor")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "1/1 keys healthy") {
		t.Errorf("expected healthy summary, got %q", out)
	}
}

func TestE2E_DoctorNoAccounts(t *testing.T) {
	out, _, code := runGmaps(t, t.TempDir(), "doctor")
	if code != 0 {
		t.Fatalf("doctor without accounts should still exit 0, got %d", code)
	}
	if !strings.Contains(out, "no accounts configured") {
		t.Errorf("expected missing-account warning, got %q", out)
	}
}

// --- Completion ---

func TestE2E_CompletionZsh(t *testing.T) {
	out, _, code := runGmaps(t, t.TempDir(), "completion", "zsh")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if len(out) == 0 {
		t.Error("expected zsh completion output, got empty")
	}
}
