package domain

import "strings"

// FishVariety is one entry in the registry that loading item codes
// refer to.
type FishVariety struct {
	Code string
	Name string
}

// Validate checks both registry fields are present.
func (v FishVariety) Validate() error {
	if strings.TrimSpace(v.Code) == "" || strings.TrimSpace(v.Name) == "" {
		return ErrInvalidVariety
	}
	return nil
}
