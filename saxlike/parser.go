package saxlike

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// SAX-like XML Parser
type Parser struct {
	*xml.Decoder
	handler Handler
}

// Create a New Parser
func NewParser(reader io.Reader, handler Handler) *Parser {
	decoder := xml.NewDecoder(reader)
	return &Parser{decoder, handler}
}

// SetHTMLMode makes the Parser tolerate HTML-ish input: unclosed tags and
// HTML entities no longer abort the parse
func (p *Parser) SetHTMLMode() {
	p.Strict = false
	p.AutoClose = xml.HTMLAutoClose
	p.Entity = xml.HTMLEntity
}

// Parse walks the token stream and dispatches the handler's method for each
// start-element, end-element, character data and so on, until EOF
func (p *Parser) Parse() error {
	p.handler.StartDocument()
	for {
		token, err := p.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("Parser.Parse: failed reading the next xml token: %w", err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			p.handler.StartElement(t)
		case xml.EndElement:
			p.handler.EndElement(t)
		case xml.CharData:
			p.handler.CharData(t)
		case xml.Comment:
			p.handler.Comment(t)
		case xml.ProcInst:
			p.handler.ProcInst(t)
		case xml.Directive:
			p.handler.Directive(t)
		}
	}
	p.handler.EndDocument()
	return nil
}

// Create a parser and parse
func Parse(reader io.Reader, handler Handler, htmlMode bool) error {
	parser := NewParser(reader, handler)
	if htmlMode {
		parser.SetHTMLMode()
	}
	return parser.Parse()
}
