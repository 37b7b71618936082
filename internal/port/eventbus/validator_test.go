package eventbus

import (
	"strings"
	"testing"
)

func TestValidateValidWelcomeEvent(t *testing.T) {
	data := []byte(`{"event":"welcome-email-sent","event_id":"e1","user_name":"Alice","user_email":"alice@x.com","company_name":"Acme","user_role":"admin_user","sent_at":"2026-08-30T12:00:00Z"}`)
	if err := Validate(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateValidMarketingEvent(t *testing.T) {
	data := []byte(`{"event":"marketing-notified","event_id":"e2","company_name":"Acme","marketing_team_email":"mkt@x.com","users":[{"name":"Bob","email":"bob@x.com","role":"generic_user"}],"sent_at":"2026-08-30T12:00:00Z"}`)
	if err := Validate(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateUnknownEvent(t *testing.T) {
	// Unknown event names should pass (future-proof).
	data := []byte(`{"event":"something-else","foo":"bar"}`)
	if err := Validate(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateInvalidJSON(t *testing.T) {
	data := []byte(`{not valid json`)
	err := Validate(data)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "not valid JSON") {
		t.Fatalf("expected 'not valid JSON' in error, got: %v", err)
	}
}

func TestValidateInvalidSchema(t *testing.T) {
	// Valid JSON but the sent_at field cannot unmarshal into time.Time.
	data := []byte(`{"event":"welcome-email-sent","sent_at":12345}`)
	err := Validate(data)
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Fatalf("expected 'schema validation failed' in error, got: %v", err)
	}
}

func TestValidateNonObjectPayload(t *testing.T) {
	err := Validate([]byte(`"just a string"`))
	if err == nil {
		t.Fatal("expected error for non-object payload")
	}
}

func TestValidateEmptyObject(t *testing.T) {
	// Empty object is valid JSON with no event name, so it passes.
	if err := Validate([]byte(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
