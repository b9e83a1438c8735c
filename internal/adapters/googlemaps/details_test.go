package googlemaps

import "testing"

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"0000", 0, false},
		{"0930", 570, false},
		{"2359", 1439, false},
		{"930", 0, true},
		{"ab30", 0, true},
	}

	for _, tc := range tests {
		got, err := parseClockMinutes(tc.clock)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseClockMinutes(%q): expected error", tc.clock)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseClockMinutes(%q): %v", tc.clock, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseClockMinutes(%q) = %d, want %d", tc.clock, got, tc.want)
		}
	}
}

func TestParsePeriodConvertsDayNumbering(t *testing.T) {
	// API Sunday (0) is domain day 6; API Monday (1) is domain day 0.
	period, err := parsePeriod(detailPeriodPoint{Day: 0, Time: "0900"}, &detailPeriodPoint{Day: 0, Time: "1800"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if period.Day != 6 {
		t.Errorf("Day = %d, want 6", period.Day)
	}
	if period.OpenMinute != 540 {
		t.Errorf("OpenMinute = %d, want 540", period.OpenMinute)
	}
	if period.CloseMinute == nil || *period.CloseMinute != 1080 {
		t.Errorf("CloseMinute = %v, want 1080", period.CloseMinute)
	}

	openEnded, err := parsePeriod(detailPeriodPoint{Day: 1, Time: "2000"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if openEnded.Day != 0 {
		t.Errorf("Day = %d, want 0", openEnded.Day)
	}
	if openEnded.CloseMinute != nil {
		t.Errorf("CloseMinute = %v, want nil (open ended)", openEnded.CloseMinute)
	}
}
