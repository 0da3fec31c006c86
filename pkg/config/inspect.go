package config

import (
	"reflect"
	"strings"

	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
)

// Kind returns the registry token of an element, or an empty string for
// types outside the registry.
func Kind(e elements.Element) string {
	target := reflect.TypeOf(e)
	for kind, factory := range Registry() {
		if reflect.TypeOf(factory()) == target {
			return kind
		}
	}
	return ""
}

// Parameters lists the config keys of one element kind in the order its
// fields are declared. The "type" discriminator is not included.
func Parameters(kind string) ([]string, error) {
	factory, ok := Registry()[kind]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "unknown element type %q", kind)
	}
	t := reflect.TypeOf(factory()).Elem()
	params := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("yaml")
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			params = append(params, name)
		}
	}
	return params, nil
}
