package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/emzola/bookstore/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookPatch func(*data.Book)

func (p bookPatch) Apply(b *data.Book) { p(b) }

func newBookStore() *Store[data.Book, *data.Book] {
	return NewStore[data.Book]("Book", "bookId")
}

func TestStoreListEmpty(t *testing.T) {
	books, err := newBookStore().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newBookStore()
	in := data.Book{Title: "Dune", AuthorID: 1, CategoryID: 1, PublishedYear: 1965}

	created, err := s.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := s.Get(ctx, strconv.FormatInt(created.ID, 10))
	require.NoError(t, err)
	in.ID = created.ID
	assert.Equal(t, in, got)
}

func TestStoreCreateIgnoresInputID(t *testing.T) {
	s := newBookStore()
	created, err := s.Create(context.Background(), data.Book{ID: 99, Title: "Emma"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestStoreIDsStrictlyIncrease(t *testing.T) {
	ctx := context.Background()
	s := newBookStore()
	var last int64
	for i := 0; i < 5; i++ {
		b, err := s.Create(ctx, data.Book{Title: "t"})
		require.NoError(t, err)
		assert.Greater(t, b.ID, last)
		last = b.ID
	}
	assert.Equal(t, int64(5), last)
	assert.Equal(t, 5, s.Len())
}

func TestStoreDeleteDoesNotReuseID(t *testing.T) {
	ctx := context.Background()
	s := newBookStore()
	first, _ := s.Create(ctx, data.Book{Title: "a"})
	second, _ := s.Create(ctx, data.Book{Title: "b"})

	require.NoError(t, s.Delete(ctx, "2"))
	_, err := s.Get(ctx, "2")
	assert.True(t, errors.Is(err, ErrRecordNotFound))

	third, err := s.Create(ctx, data.Book{Title: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
	assert.NotEqual(t, second.ID, third.ID)

	books, _ := s.List(ctx)
	assert.Equal(t, []int64{first.ID, third.ID}, []int64{books[0].ID, books[1].ID})
	assert.Equal(t, 2, s.Len())
}

func TestStoreUpdateMergesShallowly(t *testing.T) {
	ctx := context.Background()
	s := newBookStore()
	_, _ = s.Create(ctx, data.Book{Title: "Dune", AuthorID: 1, CategoryID: 1, PublishedYear: 1965})

	updated, err := s.Update(ctx, "1", bookPatch(func(b *data.Book) { b.PublishedYear = 1966 }))
	require.NoError(t, err)
	assert.Equal(t, data.Book{ID: 1, Title: "Dune", AuthorID: 1, CategoryID: 1, PublishedYear: 1966}, updated)

	got, _ := s.Get(ctx, "1")
	assert.Equal(t, updated, got)
}

func TestStoreUpdateKeepsID(t *testing.T) {
	ctx := context.Background()
	s := newBookStore()
	_, _ = s.Create(ctx, data.Book{Title: "Dune"})

	updated, err := s.Update(ctx, "1", bookPatch(func(b *data.Book) { b.ID = 7 }))
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)
	_, err = s.Get(ctx, "7")
	assert.True(t, errors.Is(err, ErrRecordNotFound))
}

func TestStoreErrors(t *testing.T) {
	ctx := context.Background()
	s := newBookStore()
	_, _ = s.Create(ctx, data.Book{Title: "Dune"})
	before, _ := s.List(ctx)

	ops := map[string]func(id string) error{
		"get": func(id string) error { _, err := s.Get(ctx, id); return err },
		"update": func(id string) error {
			_, err := s.Update(ctx, id, bookPatch(func(b *data.Book) { b.Title = "x" }))
			return err
		},
		"delete": func(id string) error { return s.Delete(ctx, id) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op("abc")
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "bookId must be a number", err.Error())
			assert.False(t, errors.Is(err, ErrRecordNotFound))

			err = op("42")
			var nerr *NotFoundError
			require.True(t, errors.As(err, &nerr))
			assert.Equal(t, "Book not found", err.Error())
		})
	}

	after, _ := s.List(ctx)
	assert.Equal(t, before, after)
	next, _ := s.Create(ctx, data.Book{})
	assert.Equal(t, int64(2), next.ID)
}

func TestStoreListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := newBookStore()
	_, _ = s.Create(ctx, data.Book{Title: "Dune"})
	books, _ := s.List(ctx)
	books[0].Title = "changed"
	got, _ := s.Get(ctx, "1")
	assert.Equal(t, "Dune", got.Title)
}

func TestStoreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newBookStore()
	_, err := s.Create(ctx, data.Book{Title: "Dune"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Len())
	_, err = s.Get(ctx, "abc")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	s := newBookStore()
	const n = 100
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := s.Create(ctx, data.Book{Title: "t"})
			if err == nil {
				ids <- b.ID
			}
		}()
	}
	wg.Wait()
	close(ids)
	var got []int
	for id := range ids {
		got = append(got, int(id))
	}
	sort.Ints(got)
	require.Len(t, got, n)
	for i, id := range got {
		assert.Equal(t, i+1, id)
	}
}

func TestRepositoryStoresAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := New()
	author, err := repo.CreateAuthor(ctx, data.Author{Name: "Frank Herbert"})
	require.NoError(t, err)
	category, err := repo.CreateCategory(ctx, data.Category{Name: "Sci-Fi"})
	require.NoError(t, err)
	book, err := repo.CreateBook(ctx, data.Book{Title: "Dune", AuthorID: 77, CategoryID: 88})
	require.NoError(t, err)
	assert.Equal(t, int64(1), author.ID)
	assert.Equal(t, int64(1), category.ID)
	assert.Equal(t, int64(1), book.ID)
	assert.Equal(t, int64(77), book.AuthorID)

	_, err = repo.GetAuthor(ctx, "2")
	assert.EqualError(t, err, "Author not found")
	_, err = repo.GetCategory(ctx, "x")
	assert.EqualError(t, err, "categoryId must be a number")
}
