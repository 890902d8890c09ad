package omdb

// Movie is the OMDb API's movie payload.
type Movie struct {
	Title      string   `json:"Title"`
	Year       string   `json:"Year"`
	Rated      string   `json:"Rated"`
	Released   string   `json:"Released"`
	Runtime    string   `json:"Runtime"`
	Genre      string   `json:"Genre"`
	Director   string   `json:"Director"`
	Writer     string   `json:"Writer"`
	Actors     string   `json:"Actors"`
	Plot       string   `json:"Plot"`
	Language   string   `json:"Language"`
	Country    string   `json:"Country"`
	Awards     string   `json:"Awards"`
	Poster     string   `json:"Poster"`
	Ratings    []Rating `json:"Ratings"`
	Metascore  string   `json:"Metascore"`
	IMDBRating string   `json:"imdbRating"`
	IMDBVotes  string   `json:"imdbVotes"`
	IMDBID     string   `json:"imdbID"`
	BoxOffice  string   `json:"BoxOffice"`

	// Response is "False" when the lookup failed; Error then carries the
	// API's reason.
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Rating is one review-source score (e.g. "Rotten Tomatoes" / "94%").
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}
