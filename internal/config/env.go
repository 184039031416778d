package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// applyEnv overrides every field tagged `env:"NAME"` whose variable is set,
// descending into nested section structs. path names the field in errors.
func applyEnv(v reflect.Value, path string) error {
	t := v.Type()
	for i := range t.NumField() {
		field, meta := v.Field(i), t.Field(i)
		name := meta.Name
		if path != "" {
			name = path + "." + meta.Name
		}

		if field.Kind() == reflect.Struct {
			if err := applyEnv(field, name); err != nil {
				return err
			}
			continue
		}

		key := meta.Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if err := setFromString(field, strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%s (%s): %w", key, name, err)
		}
	}
	return nil
}

// setFromString parses raw into field according to its kind.
func setFromString(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("want an integer, got %q", raw)
		}
		field.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("want true or false, got %q", raw)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}
