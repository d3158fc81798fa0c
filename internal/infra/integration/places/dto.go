package places

type searchTextRequest struct {
	TextQuery string `json:"textQuery"`
	PageSize  int    `json:"pageSize"`
}

type searchTextResponse struct {
	Places []place `json:"places"`
}

type place struct {
	ID                  string       `json:"id"`
	DisplayName         *displayName `json:"displayName,omitempty"`
	FormattedAddress    string       `json:"formattedAddress"`
	NationalPhoneNumber string       `json:"nationalPhoneNumber"`
	WebsiteURI          string       `json:"websiteUri"`
	Rating              *float64     `json:"rating,omitempty"`
	UserRatingCount     *int         `json:"userRatingCount,omitempty"`
}

type displayName struct {
	Text string `json:"text"`
}
