package omdb

// DetailMessage is the one-shot result of a background movie lookup:
// exactly one DetailComplete or DetailError per channel, then close.
type DetailMessage interface {
	detailMessage()
}

// DetailComplete carries the fetched movie details.
type DetailComplete struct {
	Movie *Movie
}

// DetailError carries the reason the lookup failed.
type DetailError struct {
	Err error
}

func (DetailComplete) detailMessage() {}
func (DetailError) detailMessage()    {}

// PosterMessage is the one-shot result of a background poster download.
type PosterMessage interface {
	posterMessage()
}

// PosterComplete carries the raw image bytes.
type PosterComplete struct {
	Data []byte
}

// PosterError carries the reason the download failed.
type PosterError struct {
	Err error
}

func (PosterComplete) posterMessage() {}
func (PosterError) posterMessage()    {}

// FetchMovieAsync runs FetchMovie in its own goroutine, delivering the
// result on the returned channel. No retries and no rate limiting, just a
// single request/response exchange.
func (c *Client) FetchMovieAsync(title string) <-chan DetailMessage {
	ch := make(chan DetailMessage, 1)
	go func() {
		defer close(ch)
		movie, err := c.FetchMovie(title)
		if err != nil {
			ch <- DetailError{Err: err}
			return
		}
		ch <- DetailComplete{Movie: movie}
	}()
	return ch
}

// DownloadPosterAsync runs DownloadPoster in its own goroutine.
func (c *Client) DownloadPosterAsync(posterURL string) <-chan PosterMessage {
	ch := make(chan PosterMessage, 1)
	go func() {
		defer close(ch)
		data, err := c.DownloadPoster(posterURL)
		if err != nil {
			ch <- PosterError{Err: err}
			return
		}
		ch <- PosterComplete{Data: data}
	}()
	return ch
}
