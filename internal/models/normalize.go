package models

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	ErrNotJSON   = errors.New("payload is not valid JSON")
	ErrNotArray  = errors.New("payload is not a JSON array")
	ErrNotObject = errors.New("payload is not a JSON object")
	ErrMissingID = errors.New("record has no applicationId")
)

// ParseApplications decodes a list payload from the store. A JSON null is an empty list.
func ParseApplications(body []byte) ([]Application, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrNotJSON
	}
	root := gjson.ParseBytes(body)
	if root.Type == gjson.Null {
		return []Application{}, nil
	}
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	apps := make([]Application, 0, len(root.Array()))
	root.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			apps = append(apps, Normalize(value))
		}
		return true
	})
	return apps, nil
}

// ParseApplication decodes a single record returned by a write call.
func ParseApplication(body []byte) (Application, error) {
	if !gjson.ValidBytes(body) {
		return Application{}, ErrNotJSON
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return Application{}, ErrNotObject
	}
	app := Normalize(root)
	if app.ApplicationID == "" {
		return Application{}, ErrMissingID
	}
	return app, nil
}

// Normalize folds legacy field names into the canonical record shape.
// Older rows carry "status", "companyName" and "role".
func Normalize(r gjson.Result) Application {
	return Application{
		ApplicationID:     firstString(r, "applicationId"),
		CreatedAt:         firstString(r, "createdAt"),
		CompanyName:       firstString(r, "CompanyName", "companyName"),
		JobTitle:          firstString(r, "jobTitle", "role"),
		ApplicationStatus: firstString(r, "applicationStatus", "status"),
		ApplicationSource: firstString(r, "applicationSource"),
		DateApplied:       firstString(r, "dateApplied"),
		Location:          firstString(r, "location"),
		SalaryRange:       firstString(r, "salaryRange"),
		ActionToTake:      firstString(r, "actionToTake"),
		Notes:             firstString(r, "notes"),
	}
}

// firstString returns the first key holding a non-empty scalar.
func firstString(r gjson.Result, keys ...string) string {
	for _, k := range keys {
		v := r.Get(k)
		switch v.Type {
		case gjson.String:
			if v.Str != "" {
				return v.Str
			}
		case gjson.Number:
			return strings.TrimSpace(v.Raw)
		case gjson.True, gjson.False:
			return v.String()
		}
	}
	return ""
}
