package band

import "testing"

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		name string
		ss   float64
		want string
	}{
		{"well below floor", 40, "Very Low"},
		{"just below Low", 69, "Very Low"},
		{"Low lower bound", 70, "Low"},
		{"Low upper edge", 79, "Low"},
		{"Low Average lower bound", 80, "Low Average"},
		{"Low Average upper edge", 89, "Low Average"},
		{"Average lower bound", 90, "Average"},
		{"mean score", 100, "Average"},
		{"Average upper edge", 109, "Average"},
		{"High Average lower bound", 110, "High Average"},
		{"High Average upper edge", 119, "High Average"},
		{"Superior lower bound", 120, "Superior"},
		{"far above ceiling", 160, "Superior"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ss).Label; got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.ss, got, tt.want)
			}
		})
	}
}

func TestClassifyExhaustive(t *testing.T) {
	// Adjacent integer scores must never skip or overlap a band.
	prev := Classify(0).Label
	changes := 0
	for ss := 1; ss <= 200; ss++ {
		cur := Classify(float64(ss)).Label
		if cur != prev {
			changes++
			prev = cur
		}
	}
	if changes != 5 {
		t.Errorf("expected 5 band transitions across integer scores, got %d", changes)
	}
}

func TestClassifyString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"95", "Average"},
		{" 119 ", "High Average"},
		{"70.0", "Low"},
		{"", Unavailable},
		{"abc", Unavailable},
		{"--", Unavailable},
	}

	for _, tt := range tests {
		if got := ClassifyString(tt.raw); got != tt.want {
			t.Errorf("ClassifyString(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestAllOrderAndColors(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("expected 6 bands, got %d", len(all))
	}

	wantOrder := []string{"Very Low", "Low", "Low Average", "Average", "High Average", "Superior"}
	for i, b := range all {
		if b.Label != wantOrder[i] {
			t.Errorf("band %d = %q, want %q", i, b.Label, wantOrder[i])
		}
		if b.Color == "" {
			t.Errorf("band %q has no color", b.Label)
		}
	}
}

func TestRGB(t *testing.T) {
	r, g, b := Band{Color: "FF4C4C"}.RGB()
	if r != 255 || g != 76 || b != 76 {
		t.Errorf("RGB() = (%d, %d, %d), want (255, 76, 76)", r, g, b)
	}

	// Malformed colors fall back to white rather than failing.
	r, g, b = Band{Color: "nope"}.RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("RGB() fallback = (%d, %d, %d), want white", r, g, b)
	}
}

func TestColorFor(t *testing.T) {
	if got := ColorFor("Average"); got != "66B2FF" {
		t.Errorf("ColorFor(Average) = %q, want 66B2FF", got)
	}
	if got := ColorFor(Unavailable); got != "FFFFFF" {
		t.Errorf("ColorFor(N/A) = %q, want white", got)
	}
}
