package nominatim

type ReverseAPIResponse struct {
	PlaceId     int64   `json:"place_id"`
	Licence     string  `json:"licence"`
	OsmType     string  `json:"osm_type"`
	OsmId       int64   `json:"osm_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
	PlaceRank   int     `json:"place_rank"`
	Importance  float64 `json:"importance"`
	Addresstype string  `json:"addresstype"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
	Error       string  `json:"error"`
}

type Address struct {
	Road          string `json:"road"`
	Pedestrian    string `json:"pedestrian"`
	Footway       string `json:"footway"`
	Neighbourhood string `json:"neighbourhood"`
	Quarter       string `json:"quarter"`
	Suburb        string `json:"suburb"`
	CityDistrict  string `json:"city_district"`
	Borough       string `json:"borough"`
	Hamlet        string `json:"hamlet"`
	Village       string `json:"village"`
	Town          string `json:"town"`
	City          string `json:"city"`
	County        string `json:"county"`
	State         string `json:"state"`
	Postcode      string `json:"postcode"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code"`
}

// Street returns the most specific street-like component, empty if none.
func (a Address) Street() string {
	for _, v := range []string{a.Road, a.Pedestrian, a.Footway} {
		if v != "" {
			return v
		}
	}
	return ""
}

// Locality returns the most specific settlement-like component, empty if none.
func (a Address) Locality() string {
	for _, v := range []string{a.Neighbourhood, a.Quarter, a.Suburb, a.CityDistrict, a.Borough, a.Hamlet, a.Village, a.Town, a.City} {
		if v != "" {
			return v
		}
	}
	return ""
}

// Area returns the broadest useful display component for area-tier labels:
// sub-locality first, then locality, then administrative area.
func (a Address) Area() string {
	for _, v := range []string{a.Suburb, a.Quarter, a.Neighbourhood, a.CityDistrict, a.Borough, a.City, a.Town, a.Village, a.Hamlet, a.County, a.State} {
		if v != "" {
			return v
		}
	}
	return ""
}
