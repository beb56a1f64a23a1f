package httputil

import (
	"net/url"
	"reflect"
	"strconv"
)

// GetURLFields returns the names of the fields of filter whose form
// parameter is set in the URL.
//
// queryFields can be passed to gorm's Where to filter on exactly these
// fields. Fields tagged with filterField:"false" are only contained in
// setFields and need to be handled by the caller.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}
	return queryFields, setFields
}

// QueryInt returns the integer query parameter or the fallback when it
// is absent or not a positive integer.
func QueryInt(url *url.URL, param string, fallback int) int {
	v, err := strconv.Atoi(url.Query().Get(param))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
