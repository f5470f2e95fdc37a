package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dashtab/dashtab/internal/model"
)

// Scope selects which slice of the settings a serialization covers
type Scope string

const (
	ScopeAll       Scope = "all"
	ScopeFavorites Scope = "favorites"
	ScopeSettings  Scope = "settings"
)

// Error kinds surfaced to the user as transient notifications
var (
	// ErrMalformedPayload means the payload is not valid JSON
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrSchemaMismatch means valid JSON is missing required fields for the scope
	ErrSchemaMismatch = errors.New("payload does not match the requested scope")
)

// requiredScalarKeys are the settings fields an imported object must carry
// for the all and settings scopes.
var requiredScalarKeys = []string{
	"backgroundType",
	"backgroundColor",
	"backgroundImage",
	"theme",
	"weather",
	"weatherLocation",
}

// Filename returns the suggested export filename for a scope
func Filename(scope Scope) string {
	switch scope {
	case ScopeFavorites:
		return "dashtab-favorites.json"
	case ScopeSettings:
		return "dashtab-settings.json"
	default:
		return "dashtab-all.json"
	}
}

// Export serializes the requested slice of the settings as indented JSON
func Export(settings model.Settings, scope Scope) ([]byte, error) {
	switch scope {
	case ScopeFavorites:
		return json.MarshalIndent(settings.Favorites, "", "  ")
	case ScopeSettings:
		return marshalWithoutFavorites(settings)
	case ScopeAll:
		return json.MarshalIndent(settings, "", "  ")
	default:
		return nil, fmt.Errorf("unknown export scope: %s", scope)
	}
}

// Import parses and validates a payload for the given scope and returns the
// settings that would result from applying it to current. On any error the
// returned settings are current, unchanged.
func Import(payload []byte, scope Scope, current model.Settings) (model.Settings, error) {
	if !json.Valid(payload) {
		return current, ErrMalformedPayload
	}

	switch scope {
	case ScopeAll:
		return importAll(payload, current)
	case ScopeFavorites:
		return importFavorites(payload, current)
	case ScopeSettings:
		return importSettings(payload, current)
	default:
		return current, fmt.Errorf("unknown import scope: %s", scope)
	}
}

// importAll replaces the whole settings object. The payload must be an
// object carrying a favorites array plus every core scalar field.
func importAll(payload []byte, current model.Settings) (model.Settings, error) {
	fields, err := objectFields(payload)
	if err != nil {
		return current, err
	}

	raw, exists := fields["favorites"]
	if !exists || !isArray(raw) {
		return current, ErrSchemaMismatch
	}
	for _, key := range requiredScalarKeys {
		if _, exists := fields[key]; !exists {
			return current, ErrSchemaMismatch
		}
	}

	// Unmarshalling onto defaults keeps sane values for optional fields an
	// older export may not carry (opacity, first-run alert).
	imported := model.DefaultSettings()
	if err := json.Unmarshal(payload, &imported); err != nil {
		return current, ErrSchemaMismatch
	}
	return imported, nil
}

// importFavorites replaces only the favorites field. The payload may be a
// bare favorites array or an object wrapping one.
func importFavorites(payload []byte, current model.Settings) (model.Settings, error) {
	result := current.Clone()

	var favorites []model.Favorite
	if err := json.Unmarshal(payload, &favorites); err == nil {
		result.Favorites = favorites
		return result, nil
	}

	var wrapper struct {
		Favorites *[]model.Favorite `json:"favorites"`
	}
	if err := json.Unmarshal(payload, &wrapper); err != nil || wrapper.Favorites == nil {
		return current, ErrSchemaMismatch
	}

	result.Favorites = *wrapper.Favorites
	return result, nil
}

// importSettings merges the scalar settings onto current, leaving the
// favorites untouched. A favorites field in the payload is ignored.
func importSettings(payload []byte, current model.Settings) (model.Settings, error) {
	fields, err := objectFields(payload)
	if err != nil {
		return current, err
	}
	for _, key := range requiredScalarKeys {
		if _, exists := fields[key]; !exists {
			return current, ErrSchemaMismatch
		}
	}

	result := current.Clone()
	kept := result.Favorites
	if err := json.Unmarshal(payload, &result); err != nil {
		return current, ErrSchemaMismatch
	}
	result.Favorites = kept
	return result, nil
}

// objectFields returns the top-level keys of a JSON object payload
func objectFields(payload []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, ErrSchemaMismatch
	}
	return fields, nil
}

// isArray reports whether a raw JSON value is an array
func isArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return len(trimmed) > 0 && trimmed[0] == '['
}

// marshalWithoutFavorites serializes settings with the favorites field
// stripped from the object.
func marshalWithoutFavorites(settings model.Settings) ([]byte, error) {
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	delete(fields, "favorites")

	return json.MarshalIndent(fields, "", "  ")
}
