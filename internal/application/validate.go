package application

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/greenloop/greencycle/internal/domain/entity"
)

// CreateCollectionInput is the raw inbound shape for a collection request.
// Kilograms and RewardPoints are typed any because callers send them as
// either JSON numbers or numeric strings.
type CreateCollectionInput struct {
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	WasteType    string `json:"wasteType"`
	Location     string `json:"location"`
	Address      string `json:"address"`
	DateTime     string `json:"dateTime"`
	Kilograms    any    `json:"kilograms"`
	RewardPoints any    `json:"rewardPoints"`
}

// Echo returns the payload as received, for the receivedData field of
// validation failure responses.
func (in CreateCollectionInput) Echo() map[string]any {
	return map[string]any{
		"userId":       in.UserID,
		"userName":     in.UserName,
		"wasteType":    in.WasteType,
		"location":     in.Location,
		"address":      in.Address,
		"dateTime":     in.DateTime,
		"kilograms":    in.Kilograms,
		"rewardPoints": in.RewardPoints,
	}
}

// dateTime accepts RFC 3339 plus the laxer shapes browser datetime pickers emit.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ValidateCollectionInput checks presence of the seven required fields,
// coerces the numeric and temporal ones, and returns a normalized record
// with status forced to pending and a server-set creation timestamp.
// Any failure returns a *ValidationError echoing the received payload;
// malformed numbers are rejected here rather than left to surface as a
// store error later.
func ValidateCollectionInput(in CreateCollectionInput) (*entity.CollectionRequest, error) {
	verr := &ValidationError{Reasons: map[string]string{}, Received: in.Echo()}

	require := func(field, v string) {
		if strings.TrimSpace(v) == "" {
			verr.Missing = append(verr.Missing, field)
		}
	}
	require("userId", in.UserID)
	require("userName", in.UserName)
	require("wasteType", in.WasteType)
	require("location", in.Location)
	require("address", in.Address)
	require("dateTime", in.DateTime)

	kilograms, kgOK := toFloat(in.Kilograms)
	if !present(in.Kilograms) || (kgOK && kilograms == 0) {
		verr.Missing = append(verr.Missing, "kilograms")
	} else if !kgOK {
		verr.Reasons["kilograms"] = "must be numeric"
	} else if kilograms < 0 {
		verr.Reasons["kilograms"] = "must not be negative"
	}

	// rewardPoints is optional; only its shape is checked
	rewardPoints := 0.0
	if present(in.RewardPoints) {
		var ok bool
		if rewardPoints, ok = toFloat(in.RewardPoints); !ok {
			verr.Reasons["rewardPoints"] = "must be numeric"
		}
	}

	var when time.Time
	if strings.TrimSpace(in.DateTime) != "" {
		var ok bool
		if when, ok = parseDateTime(in.DateTime); !ok {
			verr.Reasons["dateTime"] = "must be an ISO-8601 date-time"
		}
	}

	if len(verr.Missing) > 0 || len(verr.Reasons) > 0 {
		return nil, verr
	}

	return &entity.CollectionRequest{
		UserID:       in.UserID,
		UserName:     in.UserName,
		WasteType:    in.WasteType,
		Location:     in.Location,
		Address:      in.Address,
		DateTime:     when,
		Kilograms:    kilograms,
		RewardPoints: rewardPoints,
		Status:       entity.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func parseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// present reports whether a raw value was supplied at all. Empty strings
// count as absent, matching the truthiness contract of the API.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(x) != ""
	default:
		return true
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
