package domain

import (
	"encoding/json"
	"fmt"
)

// MarshalDetails encodes d for storage. The category is returned separately
// so the store can keep it in its own column.
func MarshalDetails(d Details) (DetailsCategory, []byte, error) {
	if d == nil {
		return "", nil, nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return "", nil, fmt.Errorf("encoding %s details: %w", d.Category(), err)
	}
	return d.Category(), data, nil
}

// UnmarshalDetails decodes a payload written by MarshalDetails.
func UnmarshalDetails(category DetailsCategory, data []byte) (Details, error) {
	if category == "" || len(data) == 0 {
		return nil, nil
	}
	var (
		d   Details
		err error
	)
	switch category {
	case CategoryCoreDrilling:
		var v CoreDrillingDetails
		err = json.Unmarshal(data, &v)
		d = v
	case CategorySawing:
		var v SawingDetails
		err = json.Unmarshal(data, &v)
		d = v
	case CategoryGeneral:
		var v GeneralDetails
		err = json.Unmarshal(data, &v)
		d = v
	default:
		return nil, fmt.Errorf("unknown details category %q", category)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s details: %w", category, err)
	}
	return d, nil
}
