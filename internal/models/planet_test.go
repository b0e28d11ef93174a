package models

import (
	"encoding/json"
	"testing"
)

func TestPopulationMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		pop  Population
		want string
	}{
		{"known value", KnownPopulation(200000), "200000"},
		{"known zero", KnownPopulation(0), "0"},
		{"unknown", Population{}, `"unknown"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.pop)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPopulationUnmarshalJSON(t *testing.T) {
	var p Population
	if err := json.Unmarshal([]byte("1000"), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !p.Known || p.Value != 1000 {
		t.Errorf("Unmarshal(1000) = %+v, want known 1000", p)
	}

	if err := json.Unmarshal([]byte(`"unknown"`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p.Known {
		t.Errorf("Unmarshal(\"unknown\") = %+v, want unknown", p)
	}
}

func TestPopulationLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Population
		want bool
	}{
		{"unknown below zero", Population{}, KnownPopulation(0), true},
		{"zero not below unknown", KnownPopulation(0), Population{}, false},
		{"unknown not below unknown", Population{}, Population{}, false},
		{"smaller below larger", KnownPopulation(1), KnownPopulation(2), true},
		{"larger not below smaller", KnownPopulation(2), KnownPopulation(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("(%s).Less(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
