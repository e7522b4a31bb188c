package saxlike

import "encoding/xml"

// Handler receives the parse events emitted by Parser
type Handler interface {
	StartDocument()
	EndDocument()
	StartElement(xml.StartElement)
	EndElement(xml.EndElement)
	CharData(xml.CharData)
	Comment(xml.Comment)
	ProcInst(xml.ProcInst)
	Directive(xml.Directive)
}

// VoidHandler ignores every event. Embed it and override just the events you
// care about.
type VoidHandler struct{}

func (VoidHandler) StartDocument()                {}
func (VoidHandler) EndDocument()                  {}
func (VoidHandler) StartElement(xml.StartElement) {}
func (VoidHandler) EndElement(xml.EndElement)     {}
func (VoidHandler) CharData(xml.CharData)         {}
func (VoidHandler) Comment(xml.Comment)           {}
func (VoidHandler) ProcInst(xml.ProcInst)         {}
func (VoidHandler) Directive(xml.Directive)       {}
