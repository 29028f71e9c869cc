package utils

import "testing"

func TestCommaFormat(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{4361, "4,361"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}
	for _, tc := range cases {
		if got := CommaFormat(tc.in); got != tc.want {
			t.Errorf("CommaFormat(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFnv64aDeterministic(t *testing.T) {
	if Fnv64a("1234567890") != Fnv64a("1234567890") {
		t.Error("相同输入的哈希应一致")
	}
	if Fnv64a("a") == Fnv64a("b") {
		t.Error("不同输入的哈希不应相同")
	}
}

func TestTokenize(t *testing.T) {
	if got := len(Tokenize("  debit   card  ")); got != 2 {
		t.Errorf("Tokenize应忽略多余空白: got %d, want 2", got)
	}
	if got := len(Tokenize("")); got != 0 {
		t.Errorf("空串应得到空切片: got %d", got)
	}
}
