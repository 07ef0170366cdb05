package abbrev

import "testing"

func TestPairsAreBijective(t *testing.T) {
	d := Default()
	for full, short := range d.Pairs() {
		if got := d.Expand(short); got != full {
			t.Errorf("Expand(%q) = %q, want %q", short, got, full)
		}
		if got := d.Compress(full); got != short {
			t.Errorf("Compress(%q) = %q, want %q", full, got, short)
		}
	}
}

func TestUnknownKeysPassThrough(t *testing.T) {
	d := Default()
	if got := d.Expand("custom_field"); got != "custom_field" {
		t.Errorf("Expand = %q", got)
	}
	if got := d.Compress("custom_field"); got != "custom_field" {
		t.Errorf("Compress = %q", got)
	}
}

func TestAliasExpandsOnly(t *testing.T) {
	d := Default()
	if got := d.Expand("v"); got != "version" {
		t.Errorf("Expand(v) = %q, want version", got)
	}
	if got := d.Compress("version"); got == "v" {
		t.Error("alias should not become the canonical compression")
	}
}

func TestCustomPairs(t *testing.T) {
	d := New(WithPair("gw", "gateway"), WithSection('g', "gateways"))
	if got := d.Expand("gw"); got != "gateway" {
		t.Errorf("Expand(gw) = %q", got)
	}
	if got := d.SectionName('g'); got != "gateways" {
		t.Errorf("SectionName(g) = %q", got)
	}
	if got := d.SectionID("gateways"); got != 'g' {
		t.Errorf("SectionID(gateways) = %q", got)
	}
	// defaults still present
	if got := d.Expand("nm"); got != "name" {
		t.Errorf("Expand(nm) = %q", got)
	}
}

func TestSectionFallbacks(t *testing.T) {
	d := Default()
	tests := []struct {
		name string
		want rune
	}{
		{"users", 'u'},
		{"widgets", 'w'},
		{"Widgets", 'w'},
		{"q", 'q'},
		{"Q", 'Q'},
		{"", 'x'},
	}
	for _, tc := range tests {
		if got := d.SectionID(tc.name); got != tc.want {
			t.Errorf("SectionID(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
	if got := d.SectionName('u'); got != "users" {
		t.Errorf("SectionName(u) = %q", got)
	}
	if got := d.SectionName('z'); got != "z" {
		t.Errorf("SectionName(z) = %q", got)
	}
}
