package content

import (
	"strings"
	"testing"
)

const validCatalogJSON = `{
  "subjects": [
    {"id": "basics", "title": "Basics", "position": 0},
    {"id": "algebra", "title": "Algebra", "position": 1, "prerequisites": ["basics"]}
  ],
  "lessons": [
    {"id": "b1", "subject_id": "basics", "title": "Counting", "position": 0, "is_reviewable": true},
    {"id": "a1", "subject_id": "algebra", "title": "Variables", "position": 0, "is_reviewable": true, "audio_preset": "calm"}
  ]
}`

func TestParseCatalog(t *testing.T) {
	cat, err := ParseCatalog(strings.NewReader(validCatalogJSON))
	if err != nil {
		t.Fatal(err)
	}
	if len(cat.Subjects) != 2 || len(cat.Lessons) != 2 {
		t.Fatalf("parsed %d subjects / %d lessons, want 2 / 2", len(cat.Subjects), len(cat.Lessons))
	}
	if got := cat.Subjects[1].Prerequisites; len(got) != 1 || got[0] != "basics" {
		t.Errorf("algebra prerequisites = %v, want [basics]", got)
	}
	if cat.Lessons[1].AudioPreset != "calm" {
		t.Errorf("audio preset = %q, want calm", cat.Lessons[1].AudioPreset)
	}
}

func TestParseCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not JSON", `{"subjects": [`},
		{"missing lessons key", `{"subjects": []}`},
		{"subject without title", `{"subjects": [{"id": "x", "position": 0}], "lessons": []}`},
		{"unknown field", `{"subjects": [], "lessons": [], "extra": true}`},
		{"empty id", `{"subjects": [{"id": "", "title": "X", "position": 0}], "lessons": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCatalog(strings.NewReader(tt.json)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestValidateCatalog(t *testing.T) {
	cat := &Catalog{
		Subjects: []Subject{
			{ID: "a", Title: "A"},
			{ID: "a", Title: "A again"},
		},
		Lessons: []Lesson{
			{ID: "l1", SubjectID: "a", Title: "L"},
			{ID: "l1", SubjectID: "ghost", Title: "L dup"},
		},
	}
	err := ValidateCatalog(cat)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"duplicate subject ID", "duplicate lesson ID", "nonexistent subject"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestLessonsBySubject(t *testing.T) {
	cat, err := ParseCatalog(strings.NewReader(validCatalogJSON))
	if err != nil {
		t.Fatal(err)
	}
	grouped := cat.LessonsBySubject()
	if len(grouped["basics"]) != 1 || grouped["basics"][0].ID != "b1" {
		t.Errorf("basics lessons = %+v, want [b1]", grouped["basics"])
	}
}
