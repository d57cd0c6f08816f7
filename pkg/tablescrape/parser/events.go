// Package parser turns HTML markup into table rows.
//
// Markup is tokenized into a flat stream of start-tag, end-tag and text
// events which an Extractor folds into a models.Table.
package parser

import (
	"errors"
	"io"

	"golang.org/x/net/html"
)

// EventKind identifies the type of a parse event.
type EventKind int

const (
	// StartTag is an opening tag such as <tr>.
	StartTag EventKind = iota
	// EndTag is a closing tag such as </tr>.
	EndTag
	// Text is character data between tags, with entities decoded.
	Text
)

func (k EventKind) String() string {
	switch k {
	case StartTag:
		return "start"
	case EndTag:
		return "end"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Event is one item of the tokenizer stream.
type Event struct {
	Kind EventKind
	// Tag is the lower-cased element name for StartTag and EndTag.
	Tag string
	// Data is the decoded text for Text events.
	Data string
}

// Tokenize reads HTML from r and calls emit for every start tag, end tag and
// text run in document order. Comments and doctypes are skipped. A
// self-closing tag such as <td/> is reported as a start tag immediately
// followed by its end tag.
//
// Only <script> and <style> hold raw text. Markup inside <noscript>,
// <iframe>, <textarea>, <title> and the like is tokenized as usual.
func Tokenize(r io.Reader, emit func(Event)) error {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return nil
			}
			return z.Err()
		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if !isRawTextTag(tag) {
				z.NextIsNotRawText()
			}
			emit(Event{Kind: StartTag, Tag: tag})
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			z.NextIsNotRawText()
			emit(Event{Kind: StartTag, Tag: tag})
			emit(Event{Kind: EndTag, Tag: tag})
		case html.EndTagToken:
			name, _ := z.TagName()
			emit(Event{Kind: EndTag, Tag: string(name)})
		case html.TextToken:
			emit(Event{Kind: Text, Data: string(z.Text())})
		}
	}
}

// isRawTextTag reports whether the content of tag is read verbatim up to
// its end tag.
func isRawTextTag(tag string) bool {
	return tag == "script" || tag == "style"
}
