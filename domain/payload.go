package domain

// Payload is a raw, decoded JSON object as received from a client.
type Payload map[string]any

// With returns a copy of p with the given key set. Keys that carry caller
// identity or path ids are always set this way so the client cannot override them.
func (p Payload) With(key string, value any) Payload {
	out := make(Payload, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[key] = value
	return out
}

// verifyStrings checks that every key is present, then that every key holds
// a string. Presence is checked for all keys before any type check.
func (p Payload) verifyStrings(missing, invalid Code, keys ...string) (map[string]string, error) {
	for _, k := range keys {
		v, ok := p[k]
		if !ok || v == nil {
			return nil, missing
		}
		if s, isStr := v.(string); isStr && s == "" {
			return nil, missing
		}
	}

	res := make(map[string]string, len(keys))
	for _, k := range keys {
		s, ok := p[k].(string)
		if !ok {
			return nil, invalid
		}
		res[k] = s
	}
	return res, nil
}
