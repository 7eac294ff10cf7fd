package models

// Optional is a string that is either present or absent
type Optional struct {
	value   string
	present bool
}

func Some(value string) Optional {
	return Optional{value: value, present: true}
}

func None() Optional {
	return Optional{}
}

// OptionalOf treats the empty string as absent.
func OptionalOf(value string) Optional {
	if value == "" {
		return None()
	}
	return Some(value)
}

func (o Optional) Get() (string, bool) {
	return o.value, o.present
}

func (o Optional) IsPresent() bool {
	return o.present
}

// OrElse returns the value if present, otherwise fallback
func (o Optional) OrElse(fallback string) string {
	if o.present {
		return o.value
	}
	return fallback
}

// ApplicationInfo is the branding metadata fetched once at startup.
// The zero value is the empty record used when the fetch fails.
type ApplicationInfo struct {
	Name    string
	Logo    Optional
	Favicon Optional
}

func (a ApplicationInfo) IsEmpty() bool {
	return a.Name == "" && !a.Logo.IsPresent() && !a.Favicon.IsPresent()
}

// InfoField is one key/value pair of a BackendInfo record
type InfoField struct {
	Key   string
	Value string
}

// BackendInfo is an ordered, display-only description of the completion backend
type BackendInfo []InfoField

// Get returns the value stored under key
func (b BackendInfo) Get(key string) (string, bool) {
	for _, f := range b {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}
