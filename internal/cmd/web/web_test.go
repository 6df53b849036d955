package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8090" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8090")
	}
	if cfg.PlannerBaseURL != "http://localhost:8091" {
		t.Fatalf("PlannerBaseURL = %q, want %q", cfg.PlannerBaseURL, "http://localhost:8091")
	}
}

func TestParseConfigOverrideHTTPAddr(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigOverridePlannerBaseURL(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-planner-base-url", "http://127.0.0.1:19091"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.PlannerBaseURL != "http://127.0.0.1:19091" {
		t.Fatalf("PlannerBaseURL = %q, want %q", cfg.PlannerBaseURL, "http://127.0.0.1:19091")
	}
}
