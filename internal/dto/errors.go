package dto

import (
	"encoding/xml"
	"fmt"
	"sort"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	XMLName xml.Name     `json:"-" xml:"error"`
	Error   string       `json:"error" xml:"message"`
	Kind    string       `json:"kind" xml:"kind"`
	Details ErrorDetails `json:"details,omitempty" xml:"details,omitempty"`
}

// ErrorDetails carries the values a caller needs to correct a request.
type ErrorDetails map[string]any

// MarshalXML writes each entry as <detail name="key">value</detail>, sorted by key.
func (d ErrorDetails) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if len(d) == 0 {
		return nil
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, k := range keys {
		el := xml.StartElement{
			Name: xml.Name{Local: "detail"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: k}},
		}
		if err := e.EncodeElement(fmt.Sprint(d[k]), el); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
