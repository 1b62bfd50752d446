package model

import "encoding/json"

// Suggestion is a short recipe idea
type Suggestion struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// UnmarshalJSON also accepts a bare string, taken as the name
func (s *Suggestion) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = Suggestion{Name: name}
		return nil
	}
	type plain Suggestion
	return json.Unmarshal(data, (*plain)(s))
}
