package maps

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/msalah0e/gmaps/internal/apierr"
)

// defaultMaxResults caps paginated searches when the caller does not.
const defaultMaxResults = 20

// TextSearchParams selects /place/textsearch/json options. Location is a
// "lat,lng" bias point and only meaningful together with Radius.
type TextSearchParams struct {
	Query      string
	Location   string
	Radius     int
	Type       string
	Language   string
	Region     string
	MaxResults int
}

func (p TextSearchParams) request() Request {
	v := url.Values{}
	v.Set("query", p.Query)
	setOpt(v, "location", p.Location)
	setOptInt(v, "radius", p.Radius)
	setOpt(v, "type", p.Type)
	setOpt(v, "language", p.Language)
	setOpt(v, "region", p.Region)
	return Request{Endpoint: EndpointTextSearch, Params: v}
}

// NearbySearchParams selects /place/nearbysearch/json options. MinPrice
// and MaxPrice are price levels "0" through "4"; empty means unset.
type NearbySearchParams struct {
	Location   string
	Radius     int
	Type       string
	Keyword    string
	Language   string
	MinPrice   string
	MaxPrice   string
	OpenNow    bool
	RankBy     string
	MaxResults int
}

func (p NearbySearchParams) request() Request {
	v := url.Values{}
	v.Set("location", p.Location)
	radius := p.Radius
	if radius <= 0 {
		radius = 1000
	}
	v.Set("radius", strconv.Itoa(radius))
	setOpt(v, "type", p.Type)
	setOpt(v, "keyword", p.Keyword)
	setOpt(v, "language", p.Language)
	setOpt(v, "minprice", p.MinPrice)
	setOpt(v, "maxprice", p.MaxPrice)
	if p.OpenNow {
		v.Set("opennow", "true")
	}
	setOpt(v, "rankby", p.RankBy)
	return Request{Endpoint: EndpointNearbySearch, Params: v}
}

// PlaceDetailsParams selects /place/details/json options. Fields trims
// the response to the named fields; empty requests everything.
type PlaceDetailsParams struct {
	PlaceID      string
	Fields       []string
	Language     string
	Region       string
	SessionToken string
}

func (p PlaceDetailsParams) request() Request {
	v := url.Values{}
	v.Set("place_id", p.PlaceID)
	setOpt(v, "fields", strings.Join(p.Fields, ","))
	setOpt(v, "language", p.Language)
	setOpt(v, "region", p.Region)
	setOpt(v, "sessiontoken", p.SessionToken)
	return Request{Endpoint: EndpointPlaceDetails, Params: v}
}

// AutocompleteParams selects /place/autocomplete/json options.
type AutocompleteParams struct {
	Input        string
	Location     string
	Radius       int
	Language     string
	Region       string
	Types        string
	Components   string
	SessionToken string
}

func (p AutocompleteParams) request() Request {
	v := url.Values{}
	v.Set("input", p.Input)
	setOpt(v, "location", p.Location)
	setOptInt(v, "radius", p.Radius)
	setOpt(v, "language", p.Language)
	setOpt(v, "region", p.Region)
	setOpt(v, "types", p.Types)
	setOpt(v, "components", p.Components)
	setOpt(v, "sessiontoken", p.SessionToken)
	return Request{Endpoint: EndpointAutocomplete, Params: v}
}

// GeocodeParams selects forward /geocode/json options.
type GeocodeParams struct {
	Address    string
	Language   string
	Region     string
	Components string
	Bounds     string
}

func (p GeocodeParams) request() Request {
	v := url.Values{}
	v.Set("address", p.Address)
	setOpt(v, "language", p.Language)
	setOpt(v, "region", p.Region)
	setOpt(v, "components", p.Components)
	setOpt(v, "bounds", p.Bounds)
	return Request{Endpoint: EndpointGeocode, Params: v}
}

// ReverseGeocodeParams selects reverse /geocode/json options.
type ReverseGeocodeParams struct {
	Lat          float64
	Lng          float64
	Language     string
	ResultType   string
	LocationType string
}

func (p ReverseGeocodeParams) request() Request {
	v := url.Values{}
	v.Set("latlng", formatLatLng(p.Lat, p.Lng))
	setOpt(v, "language", p.Language)
	setOpt(v, "result_type", p.ResultType)
	setOpt(v, "location_type", p.LocationType)
	return Request{Endpoint: EndpointGeocode, Params: v}
}

// DirectionsParams selects /directions/json options. Mode defaults to
// driving and Units to metric, which is what the service assumes anyway;
// sending them keeps requests self-describing.
type DirectionsParams struct {
	Origin                   string
	Destination              string
	Mode                     string
	Waypoints                []string
	Alternatives             bool
	Avoid                    string
	Language                 string
	Units                    string
	Region                   string
	DepartureTime            string
	ArrivalTime              string
	TransitMode              string
	TransitRoutingPreference string
}

func (p DirectionsParams) request() Request {
	v := url.Values{}
	v.Set("origin", p.Origin)
	v.Set("destination", p.Destination)
	v.Set("mode", defaultStr(p.Mode, "driving"))
	v.Set("units", defaultStr(p.Units, "metric"))
	setOpt(v, "waypoints", strings.Join(p.Waypoints, "|"))
	if p.Alternatives {
		v.Set("alternatives", "true")
	}
	setOpt(v, "avoid", p.Avoid)
	setOpt(v, "language", p.Language)
	setOpt(v, "region", p.Region)
	setOpt(v, "departure_time", p.DepartureTime)
	setOpt(v, "arrival_time", p.ArrivalTime)
	setOpt(v, "transit_mode", p.TransitMode)
	setOpt(v, "transit_routing_preference", p.TransitRoutingPreference)
	return Request{Endpoint: EndpointDirections, Params: v}
}

// DistanceMatrixParams selects /distancematrix/json options. Origins and
// destinations are pipe-joined on the wire.
type DistanceMatrixParams struct {
	Origins                  []string
	Destinations             []string
	Mode                     string
	Language                 string
	Avoid                    string
	Units                    string
	DepartureTime            string
	ArrivalTime              string
	TransitMode              string
	TransitRoutingPreference string
	TrafficModel             string
}

func (p DistanceMatrixParams) request() Request {
	v := url.Values{}
	v.Set("origins", strings.Join(p.Origins, "|"))
	v.Set("destinations", strings.Join(p.Destinations, "|"))
	v.Set("mode", defaultStr(p.Mode, "driving"))
	v.Set("units", defaultStr(p.Units, "metric"))
	setOpt(v, "language", p.Language)
	setOpt(v, "avoid", p.Avoid)
	setOpt(v, "departure_time", p.DepartureTime)
	setOpt(v, "arrival_time", p.ArrivalTime)
	setOpt(v, "transit_mode", p.TransitMode)
	setOpt(v, "transit_routing_preference", p.TransitRoutingPreference)
	setOpt(v, "traffic_model", p.TrafficModel)
	return Request{Endpoint: EndpointDistanceMatrix, Params: v}
}

// TimezoneParams selects /timezone/json options. Timestamp zero means
// "now"; the service needs one to resolve daylight saving.
type TimezoneParams struct {
	Lat       float64
	Lng       float64
	Timestamp int64
	Language  string
}

func (p TimezoneParams) request() Request {
	ts := p.Timestamp
	if ts == 0 {
		ts = time.Now().Unix()
	}
	v := url.Values{}
	v.Set("location", formatLatLng(p.Lat, p.Lng))
	v.Set("timestamp", strconv.FormatInt(ts, 10))
	setOpt(v, "language", p.Language)
	return Request{Endpoint: EndpointTimezone, Params: v}
}

// ElevationParams selects /elevation/json options. Locations are
// pre-formatted "lat,lng" strings; Samples turns the list into a path
// to interpolate along.
type ElevationParams struct {
	Locations []string
	Samples   int
}

func (p ElevationParams) request() Request {
	v := url.Values{}
	v.Set("locations", strings.Join(p.Locations, "|"))
	setOptInt(v, "samples", p.Samples)
	return Request{Endpoint: EndpointElevation, Params: v}
}

// TextSearch runs a free-text place search, following page tokens until
// MaxResults are collected or pages run out.
func (c *Client) TextSearch(p TextSearchParams) ([]Place, error) {
	return c.searchPages(p.request(), p.MaxResults)
}

// NearbySearch lists places around a point, following page tokens like
// TextSearch.
func (c *Client) NearbySearch(p NearbySearchParams) ([]Place, error) {
	return c.searchPages(p.request(), p.MaxResults)
}

// PlaceDetails fetches the full record for one place ID.
func (c *Client) PlaceDetails(p PlaceDetailsParams) (*Place, error) {
	body, err := c.do(p.request())
	if err != nil {
		return nil, err
	}
	var out struct {
		Result Place `json:"result"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apierr.Wrap(apierr.Remote, err, "malformed response body")
	}
	return &out.Result, nil
}

// Autocomplete returns completion suggestions for a partial query.
func (c *Client) Autocomplete(p AutocompleteParams) ([]Prediction, error) {
	body, err := c.do(p.request())
	if err != nil {
		return nil, err
	}
	var out struct {
		Predictions []Prediction `json:"predictions"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apierr.Wrap(apierr.Remote, err, "malformed response body")
	}
	return out.Predictions, nil
}

// Geocode resolves an address to coordinates.
func (c *Client) Geocode(p GeocodeParams) ([]GeocodeResult, error) {
	return c.geocode(p.request())
}

// ReverseGeocode resolves coordinates to addresses.
func (c *Client) ReverseGeocode(p ReverseGeocodeParams) ([]GeocodeResult, error) {
	return c.geocode(p.request())
}

func (c *Client) geocode(req Request) ([]GeocodeResult, error) {
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var out struct {
		Results []GeocodeResult `json:"results"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apierr.Wrap(apierr.Remote, err, "malformed response body")
	}
	return out.Results, nil
}

// Directions fetches routes between two points.
func (c *Client) Directions(p DirectionsParams) ([]Route, error) {
	body, err := c.do(p.request())
	if err != nil {
		return nil, err
	}
	var out struct {
		Routes []Route `json:"routes"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apierr.Wrap(apierr.Remote, err, "malformed response body")
	}
	return out.Routes, nil
}

// DistanceMatrix fetches travel distance and time for every origin and
// destination pairing.
func (c *Client) DistanceMatrix(p DistanceMatrixParams) (*MatrixResponse, error) {
	body, err := c.do(p.request())
	if err != nil {
		return nil, err
	}
	var out MatrixResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apierr.Wrap(apierr.Remote, err, "malformed response body")
	}
	out.Raw = body
	return &out, nil
}

// Timezone fetches the time zone in effect at a coordinate.
func (c *Client) Timezone(p TimezoneParams) (*TimezoneInfo, error) {
	body, err := c.do(p.request())
	if err != nil {
		return nil, err
	}
	// ZERO_RESULTS from this API means no zone covers the coordinates
	// (open water), a failure rather than an empty result set.
	var env statusEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apierr.Wrap(apierr.Remote, err, "malformed response body")
	}
	if env.Status != StatusOK {
		return nil, statusError(env)
	}
	var out TimezoneInfo
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apierr.Wrap(apierr.Remote, err, "malformed response body")
	}
	out.Raw = body
	return &out, nil
}

// Elevation fetches elevation above sea level for each location.
func (c *Client) Elevation(p ElevationParams) ([]ElevationResult, error) {
	body, err := c.do(p.request())
	if err != nil {
		return nil, err
	}
	var out struct {
		Results []ElevationResult `json:"results"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apierr.Wrap(apierr.Remote, err, "malformed response body")
	}
	return out.Results, nil
}

// PhotoURL builds the place photo fetch URL without issuing a request;
// the caller hands it to a browser or curl. Exactly one dimension cap is
// sent, width winning when both are given, 400px width when neither is.
func (c *Client) PhotoURL(ref string, maxWidth, maxHeight int) string {
	v := url.Values{}
	v.Set("photo_reference", ref)
	switch {
	case maxWidth > 0:
		v.Set("maxwidth", strconv.Itoa(maxWidth))
	case maxHeight > 0:
		v.Set("maxheight", strconv.Itoa(maxHeight))
	default:
		v.Set("maxwidth", "400")
	}
	v.Set("key", c.key)
	return c.baseURL + string(EndpointPlacePhoto) + "?" + v.Encode()
}

type searchPage struct {
	Results       []Place `json:"results"`
	NextPageToken string  `json:"next_page_token"`
}

// searchPages dispatches a Places search and walks next_page_token
// sequentially until max results are in hand. Each follow-up waits for
// the token to become valid upstream.
func (c *Client) searchPages(req Request, max int) ([]Place, error) {
	if max <= 0 {
		max = defaultMaxResults
	}
	var out []Place
	for {
		body, err := c.do(req)
		if err != nil {
			return nil, err
		}
		var page searchPage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, apierr.Wrap(apierr.Remote, err, "malformed response body")
		}
		for i := range page.Results {
			out = append(out, page.Results[i])
			if len(out) >= max {
				return out, nil
			}
		}
		if page.NextPageToken == "" {
			return out, nil
		}
		time.Sleep(c.pageDelay)
		req.Params.Set("pagetoken", page.NextPageToken)
	}
}

func formatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
