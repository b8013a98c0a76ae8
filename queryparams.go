package uritemplate

import (
	"errors"
	"net/url"
	"strings"
)

// QueryParams is an ordered collection of query name/value pairs - the
// collection a resolved template's query converts into (and usable on its
// own for building query strings)
//
// A nil value denotes a bare name (flag) param - pairs are emitted in
// insertion order, never sorted or deduplicated
type QueryParams interface {
	// GetQuery returns the encoded query string - including the leading ?
	GetQuery() (string, error)
	// Encode returns the encoded query string - without the leading ?
	Encode() (string, error)
	Get(name string) (interface{}, bool)
	Set(name string, value interface{}) QueryParams
	Add(name string, value interface{}) QueryParams
	Del(name string) QueryParams
	Has(name string) bool
	Clone() QueryParams
}

// NewQueryParams creates an ordered QueryParams from the name and value
// pairs supplied
func NewQueryParams(namesAndValues ...interface{}) (QueryParams, error) {
	if len(namesAndValues)%2 != 0 {
		return nil, errors.New("must be a value for each name")
	}
	result := &queryParams{
		pairs: make([]queryPair, 0, len(namesAndValues)/2),
	}
	for i := 0; i < len(namesAndValues)-1; i += 2 {
		if name, ok := namesAndValues[i].(string); ok {
			result.pairs = append(result.pairs, queryPair{name: name, value: namesAndValues[i+1]})
		} else {
			return nil, errors.New("name must be a string")
		}
	}
	return result, nil
}

type queryPair struct {
	name  string
	value interface{}
}

type queryParams struct {
	pairs []queryPair
}

func (qp *queryParams) GetQuery() (string, error) {
	encoded, err := qp.Encode()
	if err != nil {
		return "", err
	}
	if encoded == "" {
		return "", nil
	}
	return "?" + encoded, nil
}

func (qp *queryParams) Encode() (string, error) {
	var qb strings.Builder
	for _, pair := range qp.pairs {
		if qb.Len() > 0 {
			qb.WriteString("&")
		}
		qb.WriteString(url.QueryEscape(pair.name))
		if pair.value != nil {
			str, err := encodeValue(pair.value)
			if err != nil {
				return "", err
			}
			qb.WriteString("=")
			qb.WriteString(url.QueryEscape(str))
		}
	}
	return qb.String(), nil
}

func (qp *queryParams) Get(name string) (interface{}, bool) {
	for _, pair := range qp.pairs {
		if pair.name == name {
			return pair.value, true
		}
	}
	return nil, false
}

func (qp *queryParams) Set(name string, value interface{}) QueryParams {
	result := make([]queryPair, 0, len(qp.pairs)+1)
	set := false
	for _, pair := range qp.pairs {
		if pair.name == name {
			if !set {
				result = append(result, queryPair{name: name, value: value})
				set = true
			}
		} else {
			result = append(result, pair)
		}
	}
	if !set {
		result = append(result, queryPair{name: name, value: value})
	}
	qp.pairs = result
	return qp
}

func (qp *queryParams) Add(name string, value interface{}) QueryParams {
	qp.pairs = append(qp.pairs, queryPair{name: name, value: value})
	return qp
}

func (qp *queryParams) Del(name string) QueryParams {
	result := make([]queryPair, 0, len(qp.pairs))
	for _, pair := range qp.pairs {
		if pair.name != name {
			result = append(result, pair)
		}
	}
	qp.pairs = result
	return qp
}

func (qp *queryParams) Has(name string) bool {
	_, ok := qp.Get(name)
	return ok
}

func (qp *queryParams) Clone() QueryParams {
	result := &queryParams{
		pairs: make([]queryPair, len(qp.pairs)),
	}
	copy(result.pairs, qp.pairs)
	return result
}
