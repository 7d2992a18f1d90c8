package memory

import (
	"testing"

	"github.com/optiship/optiship/pkg/transport"
)

func buildInputs(t *testing.T) transport.Inputs {
	t.Helper()

	catalog, err := transport.NewCatalog(
		[]transport.Facility{{ID: "F1", Location: "Chicago", Type: "warehouse"}},
		[]transport.Customer{{ID: "C1", Region: "Midwest"}},
		[]transport.Product{{ID: "P1", Category: "hardware"}},
	)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	routes, err := transport.NewRouteTable(catalog, nil)
	if err != nil {
		t.Fatalf("NewRouteTable failed: %v", err)
	}
	demand, err := transport.NewDemandTable(catalog, nil)
	if err != nil {
		t.Fatalf("NewDemandTable failed: %v", err)
	}
	capacity, err := transport.NewCapacityTable(catalog, nil)
	if err != nil {
		t.Fatalf("NewCapacityTable failed: %v", err)
	}
	return transport.Inputs{Catalog: catalog, Routes: routes, Demand: demand, Capacity: capacity}
}

func TestScenarioRepository_SaveAndGet(t *testing.T) {
	repo := NewScenarioRepository()
	inputs := buildInputs(t)

	if err := repo.Save("baseline", inputs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok := repo.Get("baseline")
	if !ok {
		t.Fatal("expected stored scenario to be found")
	}
	if got.Catalog != inputs.Catalog {
		t.Error("expected the stored catalog to be returned")
	}

	if _, ok := repo.Get("missing"); ok {
		t.Error("expected lookup of unknown scenario to fail")
	}
}

func TestScenarioRepository_RejectsDuplicatesAndEmptyNames(t *testing.T) {
	repo := NewScenarioRepository()
	inputs := buildInputs(t)

	if err := repo.Save("", inputs); err == nil {
		t.Error("expected error for empty scenario name")
	}

	if err := repo.Save("baseline", inputs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Save("baseline", inputs); err == nil {
		t.Error("expected error for duplicate scenario name")
	}
}

func TestScenarioRepository_NamesInRegistrationOrder(t *testing.T) {
	repo := NewScenarioRepository()
	inputs := buildInputs(t)

	for _, name := range []string{"c", "a", "b"} {
		if err := repo.Save(name, inputs); err != nil {
			t.Fatalf("Save %q failed: %v", name, err)
		}
	}

	names := repo.Names()
	want := []string{"c", "a", "b"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("name %d: expected %q, got %q", i, name, names[i])
		}
	}
	if repo.Len() != 3 {
		t.Errorf("expected 3 scenarios, got %d", repo.Len())
	}
}
