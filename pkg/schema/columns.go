package schema

import (
	"reflect"
)

// Columns returns the column names of a model from its `db` tags, in
// field order. The result matches the order of Values.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var res []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}

// Values returns the field values of a model that carry a `db` tag,
// in field order.
func Values(model any) []any {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res []any
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") != "" {
			res = append(res, v.Field(i).Interface())
		}
	}
	return res
}

func (RatingRun) TableName() string {
	return "rating_runs"
}

func (PersonRating) TableName() string {
	return "person_ratings"
}

func (ProductRating) TableName() string {
	return "product_ratings"
}
