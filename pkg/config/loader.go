package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variables this loader reads, e.g.
// CONMAIL_EVENT_NAME -> event_name.
const envPrefix = "CONMAIL_"

// Deadline values accept a date with an hour or a bare date; bare dates mean
// end of day, matching how event deadlines are written in the ini files the
// host application uses.
var deadlineLayouts = []string{
	"2006-01-02 15",
	"2006-01-02",
	time.RFC3339,
}

// Loader resolves a Config from defaults and environment variables.
type Loader struct {
	koanf     *koanf.Koanf
	validator *validator.Validate
}

// NewLoader creates a configuration loader with validation support.
func NewLoader() *Loader {
	return &Loader{
		koanf:     koanf.New("."),
		validator: validator.New(),
	}
}

// Load resolves the configuration: built-in defaults first, then environment
// overrides, then unmarshal and validate. The event timezone is resolved
// before the final unmarshal so deadline strings parse in it.
func (l *Loader) Load() (*Config, error) {
	if err := l.koanf.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := l.koanf.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return key, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	loc, err := time.LoadLocation(l.koanf.String("event_timezone"))
	if err != nil {
		return nil, fmt.Errorf("invalid event_timezone: %w", err)
	}

	cfg, err := l.unmarshalAndValidate(loc)
	if err != nil {
		return nil, err
	}
	cfg.loc = loc
	return cfg, nil
}

func (l *Loader) unmarshalAndValidate(loc *time.Location) (*Config, error) {
	var cfg Config
	if err := l.koanf.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToEventTimeHook(loc),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := l.validator.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// stringToEventTimeHook decodes deadline strings into time.Time in the event
// timezone. Bare dates normalize to 23:59 local.
func stringToEventTimeHook(loc *time.Location) mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(time.Time{}) {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		if s == "" {
			return time.Time{}, nil
		}
		return ParseEventTime(s, loc)
	}
}

// ParseEventTime parses a deadline value in the event timezone.
func ParseEventTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range deadlineLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			t = t.Add(23*time.Hour + 59*time.Minute)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time value %q", s)
}
