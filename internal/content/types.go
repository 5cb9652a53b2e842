package content

import "time"

// Subject is a content-authored learning subject. Prerequisite edges point
// from prerequisite to dependent. The engine never mutates subjects.
type Subject struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Prerequisites []string  `json:"prerequisites,omitempty"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

// Lesson belongs to exactly one subject. Position is the ordering key
// within the subject.
type Lesson struct {
	ID          string    `json:"id"`
	SubjectID   string    `json:"subject_id"`
	Title       string    `json:"title"`
	Position    int       `json:"position"`
	Reviewable  bool      `json:"is_reviewable"`
	AudioPreset string    `json:"audio_preset,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// Catalog is a full authored content set, the unit of import.
type Catalog struct {
	Subjects []Subject `json:"subjects"`
	Lessons  []Lesson  `json:"lessons"`
}

// LessonsBySubject groups the catalog's lessons by owning subject,
// preserving each subject's lesson order.
func (c *Catalog) LessonsBySubject() map[string][]Lesson {
	out := make(map[string][]Lesson)
	for _, l := range c.Lessons {
		out[l.SubjectID] = append(out[l.SubjectID], l)
	}
	return out
}
