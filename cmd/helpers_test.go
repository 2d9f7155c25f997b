package cmd

import (
	"errors"
	"testing"

	"niri-select/internal/filter"
)

func TestParseRules(t *testing.T) {
	rules, err := parseRules("firefox", `{"is_floating": true}`, "@active")
	if err != nil {
		t.Fatal(err)
	}
	if rules.appID == nil || rules.matching == nil || rules.workspace == nil {
		t.Errorf("expected all three rules, got %+v", rules)
	}

	rules, err = parseRules("", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if rules.appID != nil || rules.matching != nil || rules.workspace != nil {
		t.Errorf("expected no rules, got %+v", rules)
	}
}

func TestParseRules_Invalid(t *testing.T) {
	if _, err := parseRules("", "{bad", ""); !errors.Is(err, filter.ErrInvalidSyntax) {
		t.Errorf("bad matching rule: expected ErrInvalidSyntax, got %v", err)
	}
	if _, err := parseRules("", "", "@nope"); !errors.Is(err, filter.ErrInvalidSyntax) {
		t.Errorf("bad workspace token: expected ErrInvalidSyntax, got %v", err)
	}
}
