package utils

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// UnmarshalLenient decodes data into out. When strict decoding fails it
// attempts to repair the JSON (trailing commas, unquoted keys, single quotes)
// and retries once. Provider APIs occasionally return sloppy JSON through
// proxies and compatibility layers; the repair pass keeps those payloads
// usable without hiding genuinely broken responses.
func UnmarshalLenient(data []byte, out any) error {
	err := json.Unmarshal(data, out)
	if err == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(string(data))
	if repairErr != nil {
		return fmt.Errorf("failed to unmarshal response and failed to repair JSON: unmarshal error: %w, repair error: %v", err, repairErr)
	}

	if err = json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("failed to unmarshal repaired JSON: %w", err)
	}
	return nil
}
