package config

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elermun/daybook/internal/period"
)

func TestDefaultCalendar(t *testing.T) {
	cfg := defaultConfig()
	cal, err := cfg.Calendar()
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if cal.WeekStart != time.Monday {
		t.Errorf("WeekStart = %v, want Monday", cal.WeekStart)
	}
	if cal != period.Default {
		t.Errorf("Default config should yield the default calendar, got %+v", cal)
	}
}

func TestCalendarWeekStartParsing(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{"sunday", time.Sunday, false},
		{"monday", time.Monday, false},
		{"Saturday", time.Saturday, false},
		{"", time.Monday, false},
		{"funday", 0, true},
	}

	for _, tt := range tests {
		cfg := &Config{WeekStart: tt.input}
		cal, err := cfg.Calendar()
		if tt.wantErr {
			if err == nil {
				t.Errorf("Calendar(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Calendar(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if cal.WeekStart != tt.want {
			t.Errorf("Calendar(%q).WeekStart = %v, want %v", tt.input, cal.WeekStart, tt.want)
		}
	}
}

func TestConfigUnmarshal(t *testing.T) {
	raw := []byte("data_dir: /tmp/daybook-test\nweek_start: sunday\n")

	cfg := defaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.DataDir != "/tmp/daybook-test" {
		t.Errorf("DataDir = %q, want /tmp/daybook-test", cfg.DataDir)
	}
	if cfg.WeekStart != "sunday" {
		t.Errorf("WeekStart = %q, want sunday", cfg.WeekStart)
	}

	dir, err := cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if dir != "/tmp/daybook-test" {
		t.Errorf("ResolveDataDir = %q, want configured dir", dir)
	}
}
