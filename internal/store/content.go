package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnloop/ent"
	"github.com/abhisek/learnloop/ent/lesson"
	"github.com/abhisek/learnloop/ent/subject"
	"github.com/abhisek/learnloop/internal/content"
)

// contentRepo implements ContentRepo using the ent client. The content
// version lives in a raw key-value table because it is a single opaque
// token, not an entity.
type contentRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *contentRepo) Subjects(ctx context.Context) ([]content.Subject, error) {
	rows, err := r.client.Subject.Query().
		Order(ent.Asc(subject.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	out := make([]content.Subject, len(rows))
	for i, row := range rows {
		out[i] = content.Subject{
			ID:            row.SubjectID,
			Title:         row.Title,
			Prerequisites: row.Prerequisites,
			Position:      row.Position,
			CreatedAt:     row.CreatedAt,
		}
	}
	return out, nil
}

func (r *contentRepo) Lessons(ctx context.Context, subjectID string) ([]content.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(lesson.SubjectID(subjectID)).
		Order(ent.Asc(lesson.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons for %s: %w", subjectID, err)
	}
	out := make([]content.Lesson, len(rows))
	for i, row := range rows {
		out[i] = entLessonToLesson(row)
	}
	return out, nil
}

func (r *contentRepo) Lesson(ctx context.Context, lessonID string) (*content.Lesson, error) {
	row, err := r.client.Lesson.Query().
		Where(lesson.LessonID(lessonID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lesson %s: %w", lessonID, ErrNotFound)
		}
		return nil, fmt.Errorf("query lesson %s: %w", lessonID, err)
	}
	l := entLessonToLesson(row)
	return &l, nil
}

func (r *contentRepo) ReplaceAll(ctx context.Context, cat *content.Catalog) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin content import: %w", err)
	}

	err = func() error {
		if _, err := tx.Lesson.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("clear lessons: %w", err)
		}
		if _, err := tx.Subject.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("clear subjects: %w", err)
		}

		now := time.Now().UTC()
		for _, s := range cat.Subjects {
			createdAt := s.CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}
			if _, err := tx.Subject.Create().
				SetSubjectID(s.ID).
				SetTitle(s.Title).
				SetPrerequisites(s.Prerequisites).
				SetPosition(s.Position).
				SetCreatedAt(createdAt).
				Save(ctx); err != nil {
				return fmt.Errorf("create subject %s: %w", s.ID, err)
			}
		}
		for _, l := range cat.Lessons {
			createdAt := l.CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}
			if _, err := tx.Lesson.Create().
				SetLessonID(l.ID).
				SetSubjectID(l.SubjectID).
				SetTitle(l.Title).
				SetPosition(l.Position).
				SetIsReviewable(l.Reviewable).
				SetAudioPreset(l.AudioPreset).
				SetCreatedAt(createdAt).
				Save(ctx); err != nil {
				return fmt.Errorf("create lesson %s: %w", l.ID, err)
			}
		}
		return nil
	}()
	if err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit content import: %w", err)
	}

	return r.bumpVersion(ctx)
}

func (r *contentRepo) Version(ctx context.Context) (string, error) {
	if err := r.ensureVersionTable(ctx); err != nil {
		return "", err
	}
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT version FROM content_meta WHERE id = 1`).Scan(&v)
	if err != nil {
		return "", fmt.Errorf("read content version: %w", err)
	}
	return v, nil
}

func (r *contentRepo) bumpVersion(ctx context.Context) error {
	if err := r.ensureVersionTable(ctx); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE content_meta SET version = ? WHERE id = 1`, uuid.NewString())
	if err != nil {
		return fmt.Errorf("bump content version: %w", err)
	}
	return nil
}

func (r *contentRepo) ensureVersionTable(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS content_meta (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		version TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create content_meta table: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO content_meta (id, version) VALUES (1, ?)`, uuid.NewString())
	if err != nil {
		return fmt.Errorf("seed content version: %w", err)
	}
	return nil
}

func entLessonToLesson(row *ent.Lesson) content.Lesson {
	return content.Lesson{
		ID:          row.LessonID,
		SubjectID:   row.SubjectID,
		Title:       row.Title,
		Position:    row.Position,
		Reviewable:  row.IsReviewable,
		AudioPreset: row.AudioPreset,
		CreatedAt:   row.CreatedAt,
	}
}
