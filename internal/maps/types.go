package maps

import "encoding/json"

// The result types below decode only the fields the human output needs.
// Each top-level item also keeps its exact wire payload in Raw so JSON
// output can reproduce the remote document instead of a lossy re-encode.

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Viewport is the recommended bounding box for displaying a result.
type Viewport struct {
	Northeast LatLng `json:"northeast"`
	Southwest LatLng `json:"southwest"`
}

// Geometry carries the location of a place or geocode result.
type Geometry struct {
	Location     LatLng   `json:"location"`
	LocationType string   `json:"location_type"`
	Viewport     Viewport `json:"viewport"`
}

// OpeningHours reports whether a place is open at request time. OpenNow
// is a pointer because the field is frequently absent, and absent is not
// the same as closed.
type OpeningHours struct {
	OpenNow *bool `json:"open_now"`
}

// Photo references a retrievable place photo.
type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// Review is one user review on a place details result.
type Review struct {
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
}

// Place is one Places API result. Details responses use the same shape
// with more fields populated.
type Place struct {
	Name             string        `json:"name"`
	PlaceID          string        `json:"place_id"`
	FormattedAddress string        `json:"formatted_address"`
	Vicinity         string        `json:"vicinity"`
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
	PriceLevel       int           `json:"price_level"`
	Geometry         Geometry      `json:"geometry"`
	OpeningHours     *OpeningHours `json:"opening_hours"`
	Types            []string      `json:"types"`
	Website          string        `json:"website"`
	PhoneNumber      string        `json:"formatted_phone_number"`
	Reviews          []Review      `json:"reviews"`
	Photos           []Photo       `json:"photos"`

	Raw json.RawMessage `json:"-"`
}

func (p *Place) UnmarshalJSON(b []byte) error {
	type plain Place
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Place(v)
	p.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// Prediction is one autocomplete suggestion.
type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`

	Raw json.RawMessage `json:"-"`
}

func (p *Prediction) UnmarshalJSON(b []byte) error {
	type plain Prediction
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Prediction(v)
	p.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// AddressComponent is one structured part of a geocoded address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// GeocodeResult is one forward or reverse geocoding match.
type GeocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	PlaceID           string             `json:"place_id"`
	Geometry          Geometry           `json:"geometry"`
	Types             []string           `json:"types"`
	AddressComponents []AddressComponent `json:"address_components"`

	Raw json.RawMessage `json:"-"`
}

func (g *GeocodeResult) UnmarshalJSON(b []byte) error {
	type plain GeocodeResult
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*g = GeocodeResult(v)
	g.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// TextValue is the API's paired human/machine representation of a
// distance (meters) or duration (seconds).
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Step is one navigation instruction within a route leg.
type Step struct {
	HTMLInstructions string    `json:"html_instructions"`
	Distance         TextValue `json:"distance"`
	Duration         TextValue `json:"duration"`
	TravelMode       string    `json:"travel_mode"`
}

// Leg is the stretch of a route between two waypoints.
type Leg struct {
	StartAddress string    `json:"start_address"`
	EndAddress   string    `json:"end_address"`
	Distance     TextValue `json:"distance"`
	Duration     TextValue `json:"duration"`
	Steps        []Step    `json:"steps"`
}

// Route is one directions alternative.
type Route struct {
	Summary string `json:"summary"`
	Legs    []Leg  `json:"legs"`

	Raw json.RawMessage `json:"-"`
}

func (r *Route) UnmarshalJSON(b []byte) error {
	type plain Route
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = Route(v)
	r.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// MatrixElement is one origin/destination pairing in a distance matrix.
// Status is per element; a matrix can succeed overall while individual
// pairings are NOT_FOUND or ZERO_RESULTS.
type MatrixElement struct {
	Status   string    `json:"status"`
	Distance TextValue `json:"distance"`
	Duration TextValue `json:"duration"`
}

// MatrixRow holds the elements for one origin, in destination order.
type MatrixRow struct {
	Elements []MatrixElement `json:"elements"`
}

// MatrixResponse is the whole distance matrix payload. Raw holds the
// full body because this endpoint is rendered as a single document, not
// a result list.
type MatrixResponse struct {
	OriginAddresses      []string    `json:"origin_addresses"`
	DestinationAddresses []string    `json:"destination_addresses"`
	Rows                 []MatrixRow `json:"rows"`

	Raw json.RawMessage `json:"-"`
}

// TimezoneInfo is the Time Zone API payload. This API alone uses
// camelCase field names on the wire.
type TimezoneInfo struct {
	TimeZoneID   string `json:"timeZoneId"`
	TimeZoneName string `json:"timeZoneName"`
	RawOffset    int    `json:"rawOffset"`
	DSTOffset    int    `json:"dstOffset"`

	Raw json.RawMessage `json:"-"`
}

// ElevationResult is one sampled elevation point.
type ElevationResult struct {
	Location   LatLng  `json:"location"`
	Elevation  float64 `json:"elevation"`
	Resolution float64 `json:"resolution"`

	Raw json.RawMessage `json:"-"`
}

func (e *ElevationResult) UnmarshalJSON(b []byte) error {
	type plain ElevationResult
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*e = ElevationResult(v)
	e.Raw = append(json.RawMessage(nil), b...)
	return nil
}
