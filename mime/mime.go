package mime

// MIME is a media type identifier, as it appears in a Content-Type header.
type MIME = string

const (
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	JSON        MIME = "application/json"
	XML         MIME = "application/xml"
	ProblemJSON MIME = "application/problem+json"
)
