package catalog

// searchResponse is the OMDb `?s=` payload
type searchResponse struct {
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}
