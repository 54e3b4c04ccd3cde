package material

import (
	"strings"
	"testing"

	"github.com/df07/go-scene-composer/pkg/core"
)

func TestMaterialKinds(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		expected Kind
		label    string
	}{
		{"lambertian", NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), Diffuse, "diffuse"},
		{"metal", NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0), Reflective, "reflective"},
		{"dielectric", NewDielectric(Glass), Refractive, "refractive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.material.Kind() != tt.expected {
				t.Errorf("Expected kind %v, got %v", tt.expected, tt.material.Kind())
			}
			if tt.material.Kind().String() != tt.label {
				t.Errorf("Expected label %q, got %q", tt.label, tt.material.Kind().String())
			}
		})
	}

	if Kind(42).String() != "unknown" {
		t.Errorf("Expected unknown label for out-of-range kind")
	}
}

func TestNewMetal_ClampsFuzzness(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)

	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.25, 0.25},
		{1.0, 1.0},
		{3.0, 1.0},
	}

	for _, tt := range tests {
		metal := NewMetal(albedo, tt.input)
		if metal.Fuzzness != tt.expected {
			t.Errorf("NewMetal fuzz %f: expected %f, got %f", tt.input, tt.expected, metal.Fuzzness)
		}
	}
}

func TestConstructors_PanicOnInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		build   func()
		message string
	}{
		{"lambertian albedo above one", func() { NewLambertian(core.NewVec3(1.2, 0.5, 0.5)) }, "lambertian albedo"},
		{"lambertian albedo negative", func() { NewLambertian(core.NewVec3(0.5, -0.1, 0.5)) }, "lambertian albedo"},
		{"metal albedo above one", func() { NewMetal(core.NewVec3(0.5, 0.5, 1.5), 0.1) }, "metal albedo"},
		{"dielectric zero index", func() { NewDielectric(0) }, "refractive index"},
		{"dielectric negative index", func() { NewDielectric(-1.5) }, "refractive index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("Expected panic, got none")
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, tt.message) {
					t.Errorf("Expected panic mentioning %q, got %v", tt.message, r)
				}
			}()
			tt.build()
		})
	}
}

func TestMaterials_ShareByPointer(t *testing.T) {
	glass := NewDielectric(Glass)
	a, b := Material(glass), Material(glass)
	if a != b {
		t.Error("Expected the same material instance to compare equal through the interface")
	}
	if Material(NewDielectric(Glass)) == a {
		t.Error("Expected separately constructed materials to be distinct instances")
	}
}
