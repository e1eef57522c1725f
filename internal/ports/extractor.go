package ports

// ExceptionExtractor pulls the server-reported exception text out of an HTML error page.
type ExceptionExtractor interface {
	Extract(body []byte) (string, error)
}
