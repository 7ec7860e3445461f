package cron

import (
	"testing"

	"sokoway/models"
	"sokoway/services/logistics"
)

func TestAggregateCorridors(t *testing.T) {
	routes := []models.Route{
		{From: "Lagos", To: "Abuja", Price: 10000, Currency: "NGN"},
		{From: "Abuja", To: "Lagos", Price: 14000, Currency: "NGN"},
		{From: "Lagos", To: "Ibadan", Price: 5000, Currency: "NGN"},
		// Mixed-currency corridor: no conversion is defined, so it is skipped.
		{From: "Lagos", To: "Accra", Price: 20000, Currency: "NGN"},
		{From: "Accra", To: "Lagos", Price: 300, Currency: "GHS"},
		// Unusable rows.
		{From: "", To: "Kano", Price: 8000, Currency: "NGN"},
		{From: "Kano", To: "Jos", Price: 0, Currency: "NGN"},
	}

	rates := aggregateCorridors(routes)

	if len(rates) != 2 {
		t.Fatalf("expected 2 corridors, got %d: %v", len(rates), rates)
	}

	key := logistics.CorridorKey("Lagos", "Abuja")
	rate, ok := rates[key]
	if !ok {
		t.Fatalf("missing corridor %q", key)
	}
	// Both directions average into one entry: (10000 + 14000) / 2.
	if rate.SuggestedPrice != 12000 {
		t.Errorf("suggested price = %v, want 12000", rate.SuggestedPrice)
	}
	if rate.SampleSize != 2 {
		t.Errorf("sample size = %d, want 2", rate.SampleSize)
	}
	if rate.Currency != "NGN" {
		t.Errorf("currency = %q, want NGN", rate.Currency)
	}
	if rate.From == "" || rate.To == "" {
		t.Errorf("corridor endpoints not recorded: %+v", rate)
	}

	if _, ok := rates[logistics.CorridorKey("Lagos", "Accra")]; ok {
		t.Error("mixed-currency corridor must be skipped")
	}

	single, ok := rates[logistics.CorridorKey("Lagos", "Ibadan")]
	if !ok {
		t.Fatal("missing single-sample corridor")
	}
	if single.SuggestedPrice != 5000 || single.SampleSize != 1 {
		t.Errorf("single-sample corridor = %+v, want price 5000 with sample size 1", single)
	}
}
