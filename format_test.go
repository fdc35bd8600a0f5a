package main

import "testing"

func TestDisplayMetaValueTaggedInstants(t *testing.T) {
	// 1500000000000 ms = 2017-07-14T02:40:00Z
	if got := displayMetaValue("[__TIME__]1500000000000"); got != "02:40:00" {
		t.Errorf("time tag = %q, want 02:40:00", got)
	}
	if got := displayMetaValue("[__DATE__]1500000000000"); got != "2017-07-14" {
		t.Errorf("date tag = %q, want 2017-07-14", got)
	}
}

func TestDisplayMetaValueSameInstantBothTags(t *testing.T) {
	timeISO, ok := decodeTaggedInstant("[__TIME__]1500000000000", timeTag)
	if !ok {
		t.Fatal("time tag failed to decode")
	}
	dateISO, ok := decodeTaggedInstant("[__DATE__]1500000000000", dateTag)
	if !ok {
		t.Fatal("date tag failed to decode")
	}
	if timeISO != dateISO {
		t.Errorf("same instant decoded differently: %q vs %q", timeISO, dateISO)
	}
}

func TestDisplayMetaValuePassThrough(t *testing.T) {
	cases := []string{
		"GE.APE..BHZ",
		"[__TIME__]not-a-number",
		"[__OTHER__]1500000000000",
		"",
	}
	for _, raw := range cases {
		if got := displayMetaValue(raw); got != raw {
			t.Errorf("displayMetaValue(%q) = %q, want pass-through", raw, got)
		}
	}
}

func TestDisplayMetaValueFractionalMillis(t *testing.T) {
	if got := displayMetaValue("[__TIME__]1500000000000.75"); got != "02:40:00" {
		t.Errorf("fractional millis = %q", got)
	}
}
