package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	if err != nil || steps != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", steps, err)
	}
	steps, err = parseSteps([]string{" 3 "})
	if err != nil || steps != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", steps, err)
	}
	for _, raw := range []string{"0", "-2", "abc"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion("2"); err != nil || v != 2 {
		t.Fatalf("expected version 2, got %d err=%v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if v, err := parseTarget("3"); err != nil || v != 3 {
		t.Fatalf("expected target 3, got %d err=%v", v, err)
	}
	if _, err := parseTarget("x"); err == nil {
		t.Fatalf("expected error for non numeric target")
	}
}

func TestRun_UnknownCommandIsUsageError(t *testing.T) {
	var out bytes.Buffer
	for _, args := range [][]string{nil, {"sideways"}} {
		err := run(args, config.Config{}, logging.NewNop(), &out)
		if !errors.Is(err, errUsage) {
			t.Fatalf("expected usage error for %v, got %v", args, err)
		}
	}
}

func TestRun_RequiresDatabaseURL(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"version"}, config.Config{DBURL: " "}, logging.NewNop(), &out)
	if err == nil {
		t.Fatalf("expected error when DB_URL is blank")
	}
}
