package transport

import (
	"fmt"
	"strings"
)

// Variable identifiers round-trip (facility, customer, product) triples
// through the solver's naming scheme. Two stable encodings exist:
//
//	joined:    Shipment_F1_C1_P1     when no id contains '_'
//	bracketed: Shipment(F1,C1,P1)    when ids contain '_' but none
//	                                 contain '(' ')' or ','
//
// An id set that collides with the delimiters of both encodings cannot be
// represented unambiguously and is rejected. The model also carries an
// explicit column index (see Model.Key), so the string round trip is only
// load-bearing for solutions keyed by name.
const (
	variablePrefix  = "Shipment"
	joinedDelim     = "_"
	bracketedDelims = "(),"
)

// EncodeVariable produces the stable textual identifier for a lane.
// It fails with a DecodeAmbiguityError when the ids collide with the
// delimiter characters of both encodings.
func EncodeVariable(key RouteKey) (string, error) {
	f, c, p := string(key.Facility), string(key.Customer), string(key.Product)

	if !containsAny(joinedDelim, f, c, p) {
		return variablePrefix + joinedDelim + f + joinedDelim + c + joinedDelim + p, nil
	}
	if !containsAny(bracketedDelims, f, c, p) {
		return fmt.Sprintf("%s(%s,%s,%s)", variablePrefix, f, c, p), nil
	}
	return "", &DecodeAmbiguityError{
		Identifier: fmt.Sprintf("(%s, %s, %s)", f, c, p),
		Reason:     "ids collide with the delimiters of both encodings",
	}
}

// DecodeVariable recovers the (facility, customer, product) triple from a
// variable identifier. It is the left inverse of EncodeVariable and fails
// with a DecodeAmbiguityError rather than mis-assigning fields when the
// identifier does not split cleanly.
func DecodeVariable(name string) (RouteKey, error) {
	switch {
	case strings.HasPrefix(name, variablePrefix+"(") && strings.HasSuffix(name, ")"):
		inner := name[len(variablePrefix)+1 : len(name)-1]
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return RouteKey{}, &DecodeAmbiguityError{
				Identifier: name,
				Reason:     fmt.Sprintf("expected 3 comma-separated ids, found %d", len(parts)),
			}
		}
		for _, part := range parts {
			if strings.ContainsAny(part, "()") {
				return RouteKey{}, &DecodeAmbiguityError{
					Identifier: name,
					Reason:     "id contains bracket delimiter",
				}
			}
		}
		return RouteKey{FacilityID(parts[0]), CustomerID(parts[1]), ProductID(parts[2])}, nil

	case strings.HasPrefix(name, variablePrefix+joinedDelim):
		rest := name[len(variablePrefix)+len(joinedDelim):]
		parts := strings.Split(rest, joinedDelim)
		if len(parts) != 3 {
			return RouteKey{}, &DecodeAmbiguityError{
				Identifier: name,
				Reason:     fmt.Sprintf("expected 3 %q-separated ids, found %d", joinedDelim, len(parts)),
			}
		}
		return RouteKey{FacilityID(parts[0]), CustomerID(parts[1]), ProductID(parts[2])}, nil

	default:
		return RouteKey{}, &DecodeAmbiguityError{
			Identifier: name,
			Reason:     "unrecognized identifier form",
		}
	}
}

func containsAny(chars string, ids ...string) bool {
	for _, id := range ids {
		if strings.ContainsAny(id, chars) {
			return true
		}
	}
	return false
}
