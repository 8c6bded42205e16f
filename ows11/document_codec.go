package ows11

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EncodeOptions control how a document is written.
type EncodeOptions struct {
	// Indent is the per level indentation; empty writes compact XML.
	Indent         string
	XMLDeclaration bool
	// Namespaces maps prefixes to namespace URIs declared on the root,
	// on top of the document's own XMLNSPrefixMap.
	Namespaces map[string]string
	// SchemaLocations maps namespaces to schema URLs written to
	// xsi:schemaLocation, on top of the document's XSISchemaLocation.
	SchemaLocations map[string]string
}

// Decode reads a document holding one OWS 1.1 global element.
func (p *Package) Decode(r io.Reader) (*DocumentRoot, error) {
	doc := NewFactory(p).CreateDocumentRoot()
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if name, _ := doc.Root(); name != "" {
				return nil, ErrTooMany("root elements: «%s» after «%s»", t.Name.Local, name)
			}
			if err := p.decodeRoot(d, t, doc); err != nil {
				return nil, err
			}
		case xml.CharData:
			if s := strings.TrimSpace(string(t)); s != "" {
				doc.Mixed = append(doc.Mixed, MixedEntry{Kind: MixedText, Data: s})
			}
		case xml.Comment:
			doc.Mixed = append(doc.Mixed, MixedEntry{Kind: MixedComment, Data: string(t)})
		case xml.ProcInst:
			if t.Target == "xml" {
				continue
			}
			doc.Mixed = append(doc.Mixed, MixedEntry{Kind: MixedProcInst, Target: t.Target, Data: string(t.Inst)})
		case xml.Directive:
			doc.Mixed = append(doc.Mixed, MixedEntry{Kind: MixedDirective, Data: string(t)})
		}
	}
	name, _ := doc.Root()
	if name == "" {
		return nil, ErrMissed("root element")
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("decoded «%s» document, %d namespace(s), %d schema location(s)",
			name, len(doc.XMLNSPrefixMap), len(doc.XSISchemaLocation)))
	}
	return doc, nil
}

func (p *Package) decodeRoot(d *xml.Decoder, start xml.StartElement, doc *DocumentRoot) error {
	if start.Name.Space != Namespace {
		return ErrElementNotFound(fmt.Sprintf("{%s}%s", start.Name.Space, start.Name.Local))
	}
	e := p.Element(start.Name.Local)
	if e == nil {
		return ErrElementNotFound(start.Name.Local)
	}
	if e.Abstract {
		return ErrInvalid("root element «%s» is abstract", e.Name)
	}
	for _, a := range start.Attr {
		switch {
		case a.Name.Space == "xmlns":
			doc.XMLNSPrefixMap[a.Name.Local] = a.Value
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			doc.XMLNSPrefixMap[""] = a.Value
		case a.Name.Space == XSINamespace && a.Name.Local == "schemaLocation":
			pairs := strings.Fields(a.Value)
			for i := 0; i+1 < len(pairs); i += 2 {
				doc.XSISchemaLocation[pairs[i]] = pairs[i+1]
			}
		}
	}
	v := e.New()
	if err := d.DecodeElement(v, &start); err != nil {
		return EnrichError(err, "element «%s»", e.Name)
	}
	doc.root = Member[any]{Name: e.Name, Value: v}
	doc.Mixed = append(doc.Mixed, MixedEntry{Kind: MixedRoot})
	return nil
}

// Encode writes the document: its top level entries in order and the
// root element with namespace declarations and schema locations.
func (p *Package) Encode(w io.Writer, doc *DocumentRoot, opts EncodeOptions) error {
	name, root := doc.Root()
	if name == "" {
		return ErrMissed("root element")
	}
	e := p.Element(name)
	if e == nil {
		return ErrElementNotFound(name)
	}
	if e.Abstract {
		return ErrInvalid("root element «%s» is abstract", name)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", opts.Indent)
	if opts.XMLDeclaration {
		if err := enc.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)}); err != nil {
			return err
		}
	}
	written := false
	writeRoot := func() error {
		written = true
		return enc.EncodeElement(root, rootStart(name, doc, opts))
	}
	for _, m := range doc.Mixed {
		var err error
		switch m.Kind {
		case MixedRoot:
			if !written {
				err = writeRoot()
			}
		case MixedText:
			err = enc.EncodeToken(xml.CharData(m.Data))
		case MixedComment:
			err = enc.EncodeToken(xml.Comment(m.Data))
		case MixedProcInst:
			err = enc.EncodeToken(xml.ProcInst{Target: m.Target, Inst: []byte(m.Data)})
		case MixedDirective:
			err = enc.EncodeToken(xml.Directive(m.Data))
		}
		if err != nil {
			return err
		}
	}
	if !written {
		if err := writeRoot(); err != nil {
			return err
		}
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("encoded «%s» document", name))
	}
	return nil
}

func rootStart(name string, doc *DocumentRoot, opts EncodeOptions) xml.StartElement {
	start := xml.StartElement{Name: xml.Name{Space: Namespace, Local: name}}

	locations := merge(doc.XSISchemaLocation, opts.SchemaLocations)
	namespaces := merge(doc.XMLNSPrefixMap, opts.Namespaces)
	if len(locations) > 0 {
		namespaces["xsi"] = XSINamespace
	}

	prefixes := maps.Keys(namespaces)
	slices.Sort(prefixes)
	for _, prefix := range prefixes {
		uri := namespaces[prefix]
		// the encoder declares the default namespace, xlink and generated prefixes itself
		if prefix == "" || prefix == "xml" || prefix == "xmlns" || strings.HasPrefix(prefix, "_") || uri == XLinkNamespace {
			continue
		}
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns:" + prefix}, Value: uri})
	}

	if len(locations) > 0 {
		spaces := maps.Keys(locations)
		slices.Sort(spaces)
		pairs := make([]string, 0, 2*len(spaces))
		for _, ns := range spaces {
			pairs = append(pairs, ns, locations[ns])
		}
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xsi:schemaLocation"}, Value: strings.Join(pairs, " ")})
	}
	return start
}

func merge(base, over map[string]string) map[string]string {
	res := make(map[string]string, len(base)+len(over))
	maps.Copy(res, base)
	maps.Copy(res, over)
	return res
}
