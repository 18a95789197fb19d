package booking

import (
	"context"
	"testing"
)

func TestCatalogServiceListsWithoutCache(t *testing.T) {
	f := newFixture()
	svc := &DefaultCatalogService{Repo: f.catalog}

	services, err := svc.ListServices(context.Background())
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("services = %d, want 2", len(services))
	}
	byID := make(map[string]ServiceInfo)
	for _, s := range services {
		byID[s.ID] = s
	}
	cut := byID["svc-cut"]
	if cut.Name != "Haircut" || cut.DurationMinutes != 45 || cut.PriceCents != 2500 {
		t.Errorf("svc-cut = %+v", cut)
	}

	barbers, err := svc.ListBarbers(context.Background())
	if err != nil {
		t.Fatalf("ListBarbers: %v", err)
	}
	if len(barbers) != 2 {
		t.Errorf("barbers = %d, want 2", len(barbers))
	}
}

func TestCatalogServiceSkipsInactive(t *testing.T) {
	f := newFixture()
	shave := f.catalog.services["svc-shave"]
	shave.IsActive = false
	f.catalog.services["svc-shave"] = shave

	svc := &DefaultCatalogService{Repo: f.catalog}
	services, err := svc.ListServices(context.Background())
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(services) != 1 || services[0].ID != "svc-cut" {
		t.Errorf("services = %+v, want only svc-cut", services)
	}
}
