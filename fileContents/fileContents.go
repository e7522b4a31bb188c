package fileContents

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"findex/saxlike"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// DirectoryError reports that a corpus directory could not be listed.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("List: failed listing the directory `%s`: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// ReadError reports that a selected file could not be read, or that its text
// could not be extracted.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Read: failed reading the file `%s`: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// List returns the paths of the immediate entries of dirPath whose name ends
// with extension, each joined with dirPath, in os.ReadDir's lexical order.
// The suffix match is exact and case-sensitive. Entries are not stat'ed: a
// directory whose name happens to match is listed too and fails later, when
// read.
func List(dirPath string, extension string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, &DirectoryError{Path: dirPath, Err: err}
	}
	filePaths := []string{}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), extension) {
			filePaths = append(filePaths, filepath.Join(dirPath, entry.Name()))
		}
	}
	return filePaths, nil
}

// Read returns the full text of the file at filePath. The decoder is picked
// by the file name extension: PDFs and markup files go through plain-text
// extraction, everything else comes back as raw bytes.
func Read(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return readPDF(filePath)
	case ".html", ".htm":
		return readHTML(filePath)
	case ".xhtml", ".xml", ".svg":
		return readXML(filePath)
	default:
		return readText(filePath)
	}
}

func readText(filePath string) (string, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return "", &ReadError{Path: filePath, Err: err}
	}
	return string(bytes), nil
}

func readPDF(filePath string) (string, error) {
	fp, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", &ReadError{Path: filePath, Err: err}
	}
	defer fp.Close()
	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", &ReadError{Path: filePath, Err: err}
	}
	var textBuf bytes.Buffer
	if _, err := textBuf.ReadFrom(plainText); err != nil {
		return "", &ReadError{Path: filePath, Err: err}
	}
	return textBuf.String(), nil
}

// readHTML walks the parsed node tree collecting text nodes. Scripts, styles
// and noscript blocks carry no searchable prose and are skipped whole.
func readHTML(filePath string) (string, error) {
	fp, err := os.Open(filePath)
	if err != nil {
		return "", &ReadError{Path: filePath, Err: err}
	}
	defer fp.Close()
	root, err := html.Parse(bufio.NewReader(fp))
	if err != nil {
		return "", &ReadError{Path: filePath, Err: err}
	}
	var textSB strings.Builder
	var visit func(node *html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch node.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if node.Type == html.TextNode {
			textSB.WriteString(node.Data)
			textSB.WriteString(" ")
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(root)
	return textSB.String(), nil
}

// SAX-like handler capturing all character data from the parsed file
type textHandler struct {
	saxlike.VoidHandler
	textDataSB strings.Builder
}

func (h *textHandler) CharData(c xml.CharData) {
	h.textDataSB.Write(c)
	h.textDataSB.WriteString(" ")
}

func readXML(filePath string) (string, error) {
	fp, err := os.Open(filePath)
	if err != nil {
		return "", &ReadError{Path: filePath, Err: err}
	}
	defer fp.Close()
	handler := &textHandler{}
	if err := saxlike.Parse(bufio.NewReader(fp), handler, false); err != nil {
		return "", &ReadError{Path: filePath, Err: err}
	}
	return handler.textDataSB.String(), nil
}
