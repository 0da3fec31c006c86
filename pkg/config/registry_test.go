package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Nikolay-Lysenko/renovation/pkg/elements"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
)

func TestKinds(t *testing.T) {
	want := []string{
		"ceiling_lamp",
		"dimension_arrow",
		"door",
		"electrical_cable",
		"led_strip",
		"line",
		"polygon",
		"power_outlet",
		"switch",
		"text_box",
		"wall",
		"wall_lamp",
		"window",
	}
	if got := Kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
}

func TestNewElement(t *testing.T) {
	element, err := NewElement("wall")
	if err != nil {
		t.Fatalf("NewElement(wall) = %v, want nil", err)
	}
	if _, ok := element.(*elements.Wall); !ok {
		t.Fatalf("NewElement(wall) returned %T, want *elements.Wall", element)
	}

	other, err := NewElement("wall")
	if err != nil {
		t.Fatalf("NewElement(wall) = %v, want nil", err)
	}
	if element == other {
		t.Error("NewElement returned the same instance twice, want fresh elements")
	}

	_, err = NewElement("fireplace")
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("NewElement(fireplace) = %v, want %s", err, errors.ErrCodeNotFound)
	}
	if !strings.Contains(err.Error(), "wall_lamp") {
		t.Errorf("expected the error to list known types, got %q", err)
	}
}
