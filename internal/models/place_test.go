package models

import "testing"

func strPtr(s string) *string { return &s }

func TestUpdatePlaceInputFields(t *testing.T) {
	tests := []struct {
		name  string
		input UpdatePlaceInput
		want  map[string]string
	}{
		{
			name:  "empty",
			input: UpdatePlaceInput{},
			want:  map[string]string{},
		},
		{
			name:  "price only",
			input: UpdatePlaceInput{Price: strPtr("Rp 30.000")},
			want:  map[string]string{"price": "Rp 30.000"},
		},
		{
			name:  "explicit empty value is kept",
			input: UpdatePlaceInput{Title: strPtr(""), Image: strPtr("https://example.com/a.jpg")},
			want:  map[string]string{"title": "", "image": "https://example.com/a.jpg"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := tc.input.Fields()
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d fields, got %d (%v)", len(tc.want), len(got), got)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Fatalf("field %q: expected %q, got %q", k, v, got[k])
				}
			}
			if tc.input.IsEmpty() != (len(tc.want) == 0) {
				t.Fatalf("IsEmpty mismatch for %v", got)
			}
		})
	}
}

func TestUpdatePlaceInputApply(t *testing.T) {
	p := Place{
		ID:          "1",
		Title:       "Borobudur",
		Price:       "Rp 25.000",
		Description: "Candi",
		Location:    "Magelang",
		Image:       "http://example.com/b.jpg",
	}

	UpdatePlaceInput{Price: strPtr("X")}.Apply(&p)

	want := Place{
		ID:          "1",
		Title:       "Borobudur",
		Price:       "X",
		Description: "Candi",
		Location:    "Magelang",
		Image:       "http://example.com/b.jpg",
	}
	if p != want {
		t.Fatalf("expected %+v, got %+v", want, p)
	}
}

func TestPlaceGetSet(t *testing.T) {
	var p Place
	for _, name := range PlaceFields {
		p.Set(name, name+"-value")
	}
	p.Set("_id", "ignored")

	for _, name := range PlaceFields {
		if got := p.Get(name); got != name+"-value" {
			t.Fatalf("field %q: got %q", name, got)
		}
	}
	if p.ID != "" {
		t.Fatalf("expected ID to stay empty, got %q", p.ID)
	}
}
