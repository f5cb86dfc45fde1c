package compiler

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/pomdp/pkg/domain"
	"golang.org/x/net/html/charset"
)

// policyDocument mirrors the solver output: a root element whose first child
// is the vector collection. Element names are not checked.
type policyDocument struct {
	XMLName     xml.Name
	Collections []vectorCollection `xml:",any"`
}

type vectorCollection struct {
	XMLName xml.Name
	Vectors []vectorElement `xml:",any"`
}

type vectorElement struct {
	XMLName xml.Name
	Action  *string `xml:"action,attr"`
	Body    string  `xml:",chardata"`
}

// ParsePolicy reads a policy document into its ordered alpha vectors.
// Solvers commonly declare encoding="ISO-8859-1", so the decoder resolves
// declared charsets instead of assuming UTF-8.
func (p *Parser) ParsePolicy(data []byte) (*domain.Policy, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var doc policyDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, &domain.ParseError{Err: fmt.Errorf("malformed policy document: %w", err)}
	}
	if len(doc.Collections) == 0 {
		return nil, &domain.ParseError{Err: fmt.Errorf("policy root <%s> has no vector collection", doc.XMLName.Local)}
	}

	coll := doc.Collections[0]
	vectors := make([]domain.AlphaVector, 0, len(coll.Vectors))
	for i, el := range coll.Vectors {
		v, err := parseVector(el)
		if err != nil {
			return nil, &domain.ParseError{Err: fmt.Errorf("vector %d <%s>: %w", i, el.XMLName.Local, err)}
		}
		vectors = append(vectors, v)
	}
	return domain.NewPolicy(vectors), nil
}

func parseVector(el vectorElement) (domain.AlphaVector, error) {
	if el.Action == nil {
		return domain.AlphaVector{}, fmt.Errorf("missing action attribute")
	}
	action, err := strconv.Atoi(strings.TrimSpace(*el.Action))
	if err != nil {
		return domain.AlphaVector{}, fmt.Errorf("invalid action %q", *el.Action)
	}

	tokens := strings.Fields(el.Body)
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		if values[i], err = strconv.ParseFloat(tok, 64); err != nil {
			return domain.AlphaVector{}, fmt.Errorf("invalid coefficient %q", tok)
		}
	}
	return domain.AlphaVector{Action: action, Values: values}, nil
}
