package flash

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := Success("New task added.")

	decoded, ok := Decode(original.Encode())
	if !ok {
		t.Fatal("expected encoded message to decode")
	}
	if decoded.Kind != KindSuccess {
		t.Errorf("expected kind %q, got %q", KindSuccess, decoded.Kind)
	}
	if decoded.Text != "New task added." {
		t.Errorf("expected text to survive the round trip, got %q", decoded.Text)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"base64 but not json", "bm90LWpzb24="},
		{"json without kind", "e30="},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := Decode(tc.value); ok {
				t.Errorf("expected %q to be rejected", tc.value)
			}
		})
	}
}

func TestWarningKind(t *testing.T) {
	m := Warning("Please input task name.")
	if m.Kind != KindWarning {
		t.Errorf("expected kind %q, got %q", KindWarning, m.Kind)
	}
}
