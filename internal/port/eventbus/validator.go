package eventbus

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Validate checks whether data is valid JSON and, when the payload declares
// a known event name, that it conforms to that event's schema. Payloads with
// unknown event names pass validation (future-proof for new event types).
func Validate(data []byte) error {
	if !json.Valid(data) {
		return errors.New("event payload is not valid JSON")
	}

	var head struct {
		Event string `json:"event"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("event payload is not an object: %w", err)
	}

	// Map event name to payload struct for structural validation.
	var target any
	switch head.Event {
	case EventWelcomeEmailSent:
		target = &WelcomeEmailSentPayload{}
	case EventMarketingNotified:
		target = &MarketingNotifiedPayload{}
	default:
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("schema validation failed for %s: %w", head.Event, err)
	}
	return nil
}
