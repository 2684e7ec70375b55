package maps

import (
	"net/url"
	"strconv"
)

// Endpoint identifies one remote API path under the shared base URL.
type Endpoint string

const (
	EndpointTextSearch     Endpoint = "/place/textsearch/json"
	EndpointNearbySearch   Endpoint = "/place/nearbysearch/json"
	EndpointPlaceDetails   Endpoint = "/place/details/json"
	EndpointAutocomplete   Endpoint = "/place/autocomplete/json"
	EndpointPlacePhoto     Endpoint = "/place/photo"
	EndpointGeocode        Endpoint = "/geocode/json"
	EndpointDirections     Endpoint = "/directions/json"
	EndpointDistanceMatrix Endpoint = "/distancematrix/json"
	EndpointTimezone       Endpoint = "/timezone/json"
	EndpointElevation      Endpoint = "/elevation/json"
)

// Request describes one outgoing API call: an endpoint plus its query
// parameters, minus the key, which the client attaches at dispatch time.
type Request struct {
	Endpoint Endpoint
	Params   url.Values
}

func setOpt(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setOptInt(v url.Values, key string, value int) {
	if value > 0 {
		v.Set(key, strconv.Itoa(value))
	}
}
