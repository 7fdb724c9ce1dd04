// Package memory хранилище в памяти процесса.
// Повторяет поведение postgres репозиториев, включая sentinel ошибки
// и каскадное удаление, и используется в тестах и при storage.backend = "memory".
package memory

import (
	"sort"
	"sync"
)

// Store общее состояние для всех репозиториев
type Store struct {
	mu sync.RWMutex

	users    map[int64]userRow
	items    map[int64]itemRow
	bookings map[int64]bookingRow
	comments map[int64]commentRow
	requests map[int64]requestRow

	seq sequences
}

type sequences struct {
	user, item, booking, comment, request int64
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		users:    make(map[int64]userRow),
		items:    make(map[int64]itemRow),
		bookings: make(map[int64]bookingRow),
		comments: make(map[int64]commentRow),
		requests: make(map[int64]requestRow),
	}
}

// Users репозиторий пользователей поверх хранилища
func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

// Items репозиторий вещей поверх хранилища
func (s *Store) Items() *ItemRepository {
	return &ItemRepository{s: s}
}

// Bookings репозиторий бронирований поверх хранилища
func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{s: s}
}

// Comments репозиторий отзывов поверх хранилища
func (s *Store) Comments() *CommentRepository {
	return &CommentRepository{s: s}
}

// Requests репозиторий запросов поверх хранилища
func (s *Store) Requests() *RequestRepository {
	return &RequestRepository{s: s}
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// deleteUserCascade повторяет ON DELETE CASCADE из схемы. Вызывать под s.mu.
func (s *Store) deleteUserCascade(userID int64) {
	for id, it := range s.items {
		if it.ownerID == userID {
			s.deleteItemCascade(id)
		}
	}
	for id, b := range s.bookings {
		if b.bookerID == userID {
			s.deleteBookingCascade(id)
		}
	}
	for id, c := range s.comments {
		if c.authorID == userID {
			delete(s.comments, id)
		}
	}
	for id, r := range s.requests {
		if r.requestorID == userID {
			s.deleteRequest(id)
		}
	}
	delete(s.users, userID)
}

func (s *Store) deleteItemCascade(itemID int64) {
	for id, b := range s.bookings {
		if b.itemID == itemID {
			s.deleteBookingCascade(id)
		}
	}
	for id, c := range s.comments {
		if c.itemID == itemID {
			delete(s.comments, id)
		}
	}
	delete(s.items, itemID)
}

func (s *Store) deleteBookingCascade(bookingID int64) {
	for id, c := range s.comments {
		if c.bookingID == bookingID {
			delete(s.comments, id)
		}
	}
	delete(s.bookings, bookingID)
}

// deleteRequest повторяет ON DELETE SET NULL для items.request_id
func (s *Store) deleteRequest(requestID int64) {
	for id, it := range s.items {
		if it.requestID != nil && *it.requestID == requestID {
			it.requestID = nil
			s.items[id] = it
		}
	}
	delete(s.requests, requestID)
}
