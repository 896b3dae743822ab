package i18n

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		accept    string
		fallback  Locale
		want      Locale
	}{
		{"preference wins", "en", "zh-CN,zh;q=0.9", ZhCN, En},
		{"accept language", "", "en-US,en;q=0.9", ZhCN, En},
		{"chinese accept", "", "zh-Hans-CN", En, ZhCN},
		{"bad preference ignored", "not a tag!", "en", ZhCN, En},
		{"nothing matches", "", "", En, En},
		{"empty fallback", "", "", "", Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.preferred, tt.accept, tt.fallback); got != tt.want {
				t.Errorf("Match(%q, %q, %q) = %q, want %q", tt.preferred, tt.accept, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if l, ok := Parse("en-GB"); !ok || l != En {
		t.Errorf("Parse(en-GB) = %q, %v", l, ok)
	}
	if _, ok := Parse(""); ok {
		t.Errorf("Parse(\"\") reported a locale")
	}
}

func TestT(t *testing.T) {
	if got := T(En, "post.toc"); got != "On this page" {
		t.Errorf("T(En, post.toc) = %q", got)
	}
	if got := T(Locale("fr"), "post.toc"); got != "目录" {
		t.Errorf("unknown locale should fall back to default, got %q", got)
	}
	if got := T(En, "no.such.key"); got != "no.such.key" {
		t.Errorf("missing key = %q, want the key", got)
	}
	for _, l := range Supported {
		for key := range catalog[Default] {
			if _, ok := catalog[l][key]; !ok {
				t.Errorf("locale %s missing key %q", l, key)
			}
		}
	}
}
