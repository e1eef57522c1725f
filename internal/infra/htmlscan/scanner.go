package htmlscan

import (
	"bytes"
	"errors"
	"io"

	"golang.org/x/net/html"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/ports"
	"github.com/Kedar1021/to-do-app/internal/usecase/extract"
)

// Scanner turns an HTML document into a stream of tag/text events using the
// x/net/html tokenizer. It never builds a DOM.
type Scanner struct {
	maxBuf int
}

type Option func(*Scanner)

// WithMaxBuf limits how much markup a single token may buffer. 0 means unlimited.
func WithMaxBuf(n int) Option {
	return func(s *Scanner) { s.maxBuf = n }
}

func New(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ExceptionExtractor = (*Scanner)(nil)

// Extract returns the text of the page's exception markers.
// On a tokenizer failure the partial text scanned so far is returned with the error.
func (s *Scanner) Extract(body []byte) (string, error) {
	sc := extract.NewExceptionScanner()
	err := s.Feed(bytes.NewReader(body), sc)
	return sc.Result(), err
}

// Feed pushes every start tag, end tag and text token of r into sink, in document order.
// Self-closing tags produce a start event immediately followed by an end event.
func (s *Scanner) Feed(r io.Reader, sink extract.Sink) error {
	z := html.NewTokenizer(r)
	if s.maxBuf > 0 {
		z.SetMaxBuf(s.maxBuf)
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			err := z.Err()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &domain.OpError{
				Op:   "htmlscan.feed",
				Kind: domain.KindExtractionFailure,
				Err:  err,
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			raw, hasAttr := z.TagName()
			name := string(raw)

			var attrs []extract.Attr
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = z.TagAttr()
				attrs = append(attrs, extract.Attr{Key: string(k), Val: string(v)})
			}

			sink.StartTag(name, attrs)
			if tt == html.SelfClosingTagToken {
				sink.EndTag(name)
			}

		case html.EndTagToken:
			raw, _ := z.TagName()
			sink.EndTag(string(raw))

		case html.TextToken:
			sink.Text(string(z.Text()))
		}
	}
}
