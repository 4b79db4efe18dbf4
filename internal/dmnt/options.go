package dmnt

import "strings"

// Option is one entry of a mount option list. Flags such as "rw" carry no
// value and have HasValue unset.
type Option struct {
	Key      string
	Value    string
	HasValue bool
}

// Options keeps mount options in the order the table lists them.
type Options []Option

// ParseOptions splits a comma separated "key" / "key=value" list.
func ParseOptions(s string) Options {
	if s == "" {
		return nil
	}

	fields := strings.Split(s, ",")
	opts := make(Options, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		k, v, ok := strings.Cut(f, "=")
		opts = append(opts, Option{Key: k, Value: v, HasValue: ok})
	}
	return opts
}

// Lookup returns the value of the first option named key.
func (o Options) Lookup(key string) (string, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return "", false
}

// String renders the options back into mnttab form.
func (o Options) String() string {
	parts := make([]string, len(o))
	for i, opt := range o {
		if opt.HasValue {
			parts[i] = opt.Key + "=" + opt.Value
		} else {
			parts[i] = opt.Key
		}
	}
	return strings.Join(parts, ",")
}
