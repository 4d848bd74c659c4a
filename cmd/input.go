package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Atrox/homedir"
	"gopkg.in/yaml.v3"

	"github.com/daticahealth/snapdash/profile"
)

// readProfileFile loads a profile payload from a JSON or YAML file.
func readProfileFile(path string) (profile.Profile, error) {
	exp, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(exp)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	p := profile.Profile{}
	switch strings.ToLower(filepath.Ext(exp)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &p)
	default:
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", exp, err)
	}
	return p, nil
}

// parseAssignments turns key=value pairs into profile fields. Values that are
// valid JSON (numbers, booleans, arrays, quoted strings) keep their type;
// anything else is stored as a plain string.
func parseAssignments(pairs []string, into profile.Profile) error {
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid field %q: expected key=value", pair)
		}
		var val any
		if err := json.Unmarshal([]byte(raw), &val); err != nil {
			val = raw
		}
		into[key] = val
	}
	return nil
}

// profilePayload builds the payload for create and update from --file and --set.
func profilePayload(file string, sets []string) (profile.Profile, error) {
	p := profile.Profile{}
	if file != "" {
		fromFile, err := readProfileFile(file)
		if err != nil {
			return nil, err
		}
		p = fromFile
	}
	if err := parseAssignments(sets, p); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("no profile fields given, use --set key=value or --file")
	}
	return p, nil
}
