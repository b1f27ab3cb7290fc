package article

import "fmt"

// FetchError reports that the article collection could not be retrieved or
// decoded. Callers treat it as "no data available".
type FetchError struct {
	Source string
	Status int // HTTP status when the transport answered with a non-success code
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching articles from %s: status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("fetching articles from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
