package nlp

import (
	"errors"
	"testing"
)

func TestExtractCommand_PlainJSON(t *testing.T) {
	cmd, err := ExtractCommand(`{"action": "86", "item": "Malbec", "type": "wine"}`)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Action != "86" || cmd.Item != "Malbec" || cmd.Type != "wine" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestExtractCommand_JSONWrappedInProse(t *testing.T) {
	response := "Sure! Here is the parsed command:\n```json\n" +
		`{"action": "add", "item": "The Fig Old Fashioned", "type": "cocktail", "details": {"price": 16, "type": "signature"}}` +
		"\n```\nLet me know if you need anything else."

	cmd, err := ExtractCommand(response)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Item != "The Fig Old Fashioned" {
		t.Fatalf("unexpected item: %q", cmd.Item)
	}
	if cmd.Details.Price == nil || *cmd.Details.Price != 16 {
		t.Fatalf("unexpected price: %v", cmd.Details.Price)
	}
	if cmd.Details.Type != "signature" {
		t.Fatalf("unexpected detail type: %q", cmd.Details.Type)
	}
}

func TestExtractCommand_NoJSON(t *testing.T) {
	_, err := ExtractCommand("I'm sorry, I can't help with that.")
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtractCommand_InvalidJSON(t *testing.T) {
	_, err := ExtractCommand(`{"action": "86", "item":`)
	if err == nil {
		t.Fatal("expected an error for truncated JSON")
	}
}

func TestExtractCommand_MissingRequiredFields(t *testing.T) {
	_, err := ExtractCommand(`{"action": "86"}`)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}
