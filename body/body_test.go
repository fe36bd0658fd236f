package body

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestSolarSystemIsValid(t *testing.T) {
	table := SolarSystem()
	if len(table) != 8 {
		t.Fatalf("Expected 8 bodies, got %d", len(table))
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("Expected default table to validate, got %v", err)
	}
	if table[0].Name != "Mercury" || table[7].Name != "Neptune" {
		t.Errorf("Expected Mercury..Neptune ordering, got %s..%s", table[0].Name, table[7].Name)
	}
}

func TestMaxRadius(t *testing.T) {
	if got := SolarSystem().MaxRadius(); got != 30.069 {
		t.Errorf("Expected max radius 30.069, got %v", got)
	}
	if got := (Table{}).MaxRadius(); got != 0 {
		t.Errorf("Expected 0 for empty table, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	mars, ok := SolarSystem().Lookup("Mars")
	if !ok {
		t.Fatal("Expected to find Mars")
	}
	if mars.RadiusAU != 1.524 || mars.PeriodYears != 1.88 || mars.Color != "red" {
		t.Errorf("Unexpected Mars entry: %+v", mars)
	}
	if _, ok := SolarSystem().Lookup("Pluto"); ok {
		t.Error("Did not expect to find Pluto")
	}
}

func TestBodyValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    Body
		wantErr bool
	}{
		{"valid", Body{Name: "Earth", RadiusAU: 1, PeriodYears: 1, Color: "blue"}, false},
		{"hex color", Body{Name: "Ceres", RadiusAU: 2.77, PeriodYears: 4.6, Color: "#b5b5b5"}, false},
		{"empty name", Body{Name: " ", RadiusAU: 1, PeriodYears: 1, Color: "blue"}, true},
		{"zero radius", Body{Name: "Sol", RadiusAU: 0, PeriodYears: 1, Color: "yellow"}, true},
		{"negative period", Body{Name: "Retro", RadiusAU: 1, PeriodYears: -1, Color: "blue"}, true},
		{"zero period", Body{Name: "Stuck", RadiusAU: 1, PeriodYears: 0, Color: "blue"}, true},
		{"unknown color", Body{Name: "Odd", RadiusAU: 1, PeriodYears: 1, Color: "octarine"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.body.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBody) {
				t.Errorf("Expected ErrInvalidBody, got %v", err)
			}
		})
	}
}

func TestTableValidateDuplicate(t *testing.T) {
	table := Table{
		{Name: "Earth", RadiusAU: 1, PeriodYears: 1, Color: "blue"},
		{Name: "Earth", RadiusAU: 2, PeriodYears: 3, Color: "red"},
	}
	if err := table.Validate(); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
	if err := (Table{}).Validate(); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("Expected ErrEmptyTable, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	data := []byte(`
[[body]]
name = "Earth"
radius_au = 1.0
period_years = 1.0
color = "blue"

[[body]]
name = "Mars"
radius_au = 1.524
period_years = 1.88
color = "red"
`)
	table, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("Expected 2 bodies, got %d", len(table))
	}
	if table[1].Name != "Mars" || table[1].RadiusAU != 1.524 {
		t.Errorf("Unexpected second body: %+v", table[1])
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[[body]]\nname = \"Earth\"\nradius = 1.0\nperiod_years = 1.0\ncolor = \"blue\"\n"},
		{"invalid body", "[[body]]\nname = \"Earth\"\nradius_au = 0.0\nperiod_years = 1.0\ncolor = \"blue\"\n"},
		{"empty", ""},
		{"syntax", "[[body]\nname = "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bodies.toml")
	content := "[[body]]\nname = \"Earth\"\nradius_au = 1.0\nperiod_years = 1.0\ncolor = \"blue\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write table: %v", err)
	}

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(table) != 1 || table[0].Name != "Earth" {
		t.Errorf("Unexpected table: %+v", table)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
