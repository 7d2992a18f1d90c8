package transport

import (
	"errors"
	"testing"
)

func TestVariable_EncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		key  RouteKey
		want string
	}{
		{
			name: "plain_ids_use_joined_form",
			key:  RouteKey{"F1", "C1", "P1"},
			want: "Shipment_F1_C1_P1",
		},
		{
			name: "hyphenated_ids_use_joined_form",
			key:  RouteKey{"WH-EAST", "RETAIL-NYC", "SKU-42"},
			want: "Shipment_WH-EAST_RETAIL-NYC_SKU-42",
		},
		{
			name: "underscore_ids_use_bracketed_form",
			key:  RouteKey{"WH_EAST", "C1", "P1"},
			want: "Shipment(WH_EAST,C1,P1)",
		},
		{
			name: "all_underscore_ids_use_bracketed_form",
			key:  RouteKey{"F_1", "C_1", "P_1"},
			want: "Shipment(F_1,C_1,P_1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := EncodeVariable(tt.key)
			if err != nil {
				t.Fatalf("EncodeVariable failed: %v", err)
			}
			if name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, name)
			}

			decoded, err := DecodeVariable(name)
			if err != nil {
				t.Fatalf("DecodeVariable failed: %v", err)
			}
			if decoded != tt.key {
				t.Errorf("round trip mismatch: encoded %+v, decoded %+v", tt.key, decoded)
			}
		})
	}
}

func TestVariable_EncodeRejectsDelimiterCollision(t *testing.T) {
	// An id with both an underscore and a comma collides with the
	// delimiters of both encodings.
	_, err := EncodeVariable(RouteKey{"F_1,X", "C1", "P1"})

	var ambErr *DecodeAmbiguityError
	if !errors.As(err, &ambErr) {
		t.Fatalf("expected DecodeAmbiguityError, got %v", err)
	}
}

func TestVariable_DecodeRejectsAmbiguousIdentifiers(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{name: "too_many_joined_tokens", identifier: "Shipment_F_1_C1_P1"},
		{name: "too_few_joined_tokens", identifier: "Shipment_F1_C1"},
		{name: "too_few_bracketed_ids", identifier: "Shipment(F1,C1)"},
		{name: "too_many_bracketed_ids", identifier: "Shipment(F1,C1,P1,X)"},
		{name: "nested_bracket", identifier: "Shipment(F(1,C1,P1)"},
		{name: "unknown_prefix", identifier: "Widget_F1_C1_P1"},
		{name: "bare_prefix", identifier: "Shipment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeVariable(tt.identifier)
			var ambErr *DecodeAmbiguityError
			if !errors.As(err, &ambErr) {
				t.Fatalf("expected DecodeAmbiguityError for %q, got %v", tt.identifier, err)
			}
			if ambErr.Identifier != tt.identifier {
				t.Errorf("error should name the offending identifier, got %q", ambErr.Identifier)
			}
		})
	}
}
