package utils

import "testing"

type colorForm struct {
	Color string `validate:"required,colorhex"`
}

func TestColorHexValidation(t *testing.T) {
	cases := []struct {
		name  string
		color string
		valid bool
	}{
		{"lowercase hex", "#aabbcc", true},
		{"uppercase hex", "#AABBCC", true},
		{"digits", "#123456", true},
		{"prefix junk is tolerated", "x#aabbcc", true},
		{"seven digits", "#1234567", false},
		{"five digits", "#12345", false},
		{"named color", "red", false},
		{"no hash", "aabbcc", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&colorForm{Color: tc.color})
			if tc.valid && err != nil {
				t.Errorf("expected %q to be valid, got %v", tc.color, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("expected %q to be invalid", tc.color)
			}
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Color string `validate:"required,colorhex"`
	}

	err := ValidateStruct(&form{Name: "", Color: "nope"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	verrs := GetValidationErrors(err)
	if verrs["Name"] != "required" {
		t.Errorf("expected Name to fail required, got %q", verrs["Name"])
	}
	if verrs["Color"] != "colorhex" {
		t.Errorf("expected Color to fail colorhex, got %q", verrs["Color"])
	}
}
