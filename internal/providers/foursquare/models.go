package foursquare

type SearchAPIResponse struct {
	Results []Place `json:"results"`
}

type Place struct {
	FsqId      string     `json:"fsq_id"`
	Name       string     `json:"name"`
	Distance   float64    `json:"distance"`
	Categories []Category `json:"categories"`
	Geocodes   Geocodes   `json:"geocodes"`
	Rating     float64    `json:"rating"`
	Stats      Stats      `json:"stats"`
	Hours      Hours      `json:"hours"`
}

type Category struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type Geocodes struct {
	Main LatLng `json:"main"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Stats struct {
	TotalRatings int `json:"total_ratings"`
	TotalTips    int `json:"total_tips"`
}

type Hours struct {
	OpenNow *bool  `json:"open_now"`
	Display string `json:"display"`
}
