package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	commentRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/comment"
)

type commentRow struct {
	id        int64
	text      string
	authorID  int64
	itemID    int64
	bookingID int64
	created   time.Time
}

// CommentRepository отзывы в памяти
type CommentRepository struct {
	s *Store
}

func (r *CommentRepository) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, authorOK := r.s.users[comment.AuthorID]
	_, itemOK := r.s.items[comment.ItemID]
	_, bookingOK := r.s.bookings[comment.BookingID]
	if !authorOK || !itemOK || !bookingOK {
		return nil, commentRepo.ErrExecQuery
	}

	r.s.seq.comment++
	comment.ID = r.s.seq.comment
	r.s.comments[comment.ID] = commentRow{
		id:        comment.ID,
		text:      comment.Text,
		authorID:  comment.AuthorID,
		itemID:    comment.ItemID,
		bookingID: comment.BookingID,
		created:   comment.Created,
	}
	return comment, nil
}

func (r *CommentRepository) ListByItem(_ context.Context, itemID int64) ([]*domain.Comment, error) {
	return r.filter(func(c commentRow) bool { return c.itemID == itemID }), nil
}

func (r *CommentRepository) ListByAuthor(_ context.Context, authorID int64) ([]*domain.Comment, error) {
	return r.filter(func(c commentRow) bool { return c.authorID == authorID }), nil
}

func (r *CommentRepository) filter(match func(commentRow) bool) []*domain.Comment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comments := make([]*domain.Comment, 0)
	for _, id := range sortedIDs(r.s.comments) {
		row := r.s.comments[id]
		if !match(row) {
			continue
		}
		comments = append(comments, &domain.Comment{
			ID:         row.id,
			Text:       row.text,
			AuthorID:   row.authorID,
			ItemID:     row.itemID,
			BookingID:  row.bookingID,
			Created:    row.created,
			AuthorName: r.s.users[row.authorID].name,
		})
	}

	sort.SliceStable(comments, func(i, j int) bool { return comments[i].Created.Before(comments[j].Created) })
	return comments
}
