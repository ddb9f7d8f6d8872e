package llcalc

import "testing"

func TestSpanExtend(t *testing.T) {
	for _, test := range []struct {
		s, other, result Span
	}{
		{Span{2, 4}, Span{5, 7}, Span{2, 7}},
		{Span{5, 7}, Span{2, 4}, Span{2, 7}},
		{Span{}, Span{3, 4}, Span{3, 4}},
		{Span{3, 4}, Span{}, Span{3, 4}},
		{Span{1, 9}, Span{2, 3}, Span{1, 9}},
	} {
		if r := test.s.Extend(test.other); r != test.result {
			t.Errorf("expected %v extended by %v to be %v, is %v", test.s, test.other, test.result, r)
		}
	}
	if s := (Span{4, 7}); s.From() != 4 || s.To() != 7 || s.IsNull() {
		t.Errorf("unexpected accessors for %v", s)
	}
	if s := (Span{4, 7}).String(); s != "(4…7)" {
		t.Errorf("expected (4…7), is %s", s)
	}
}
