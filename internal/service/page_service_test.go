package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Notifuse/sitebuilder/internal/domain"
	"github.com/Notifuse/sitebuilder/internal/domain/mocks"
	"github.com/Notifuse/sitebuilder/pkg/logger"
)

var _ domain.PageService = (*PageService)(nil)

func setupPageServiceTest(t *testing.T, maxAttempts int) (*PageService, *mocks.MockPageRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockPageRepository(ctrl)
	svc := NewPageService(mockRepo, logger.NewLoggerWithLevel("disabled"), maxAttempts)
	svc.suffix = func() string { return "abc123" }
	return svc, mockRepo
}

func TestPageService_CreatePage(t *testing.T) {
	ctx := context.Background()

	t.Run("uses the slug derived from the name", func(t *testing.T) {
		svc, repo := setupPageServiceTest(t, 5)

		repo.EXPECT().SlugExists(gomock.Any(), "store-1", "summer-sale").Return(false, nil)
		repo.EXPECT().CreatePage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, page *domain.Page) error {
				assert.Equal(t, "summer-sale", page.Slug)
				assert.Equal(t, "Summer Sale!", page.Name)
				assert.NotEmpty(t, page.ID)
				return nil
			})

		page, err := svc.CreatePage(ctx, &domain.CreatePageRequest{StoreID: "store-1", Name: "Summer Sale!"})
		require.NoError(t, err)
		assert.Equal(t, "summer-sale", page.Slug)
	})

	t.Run("explicit slug wins over the name", func(t *testing.T) {
		svc, repo := setupPageServiceTest(t, 5)

		repo.EXPECT().SlugExists(gomock.Any(), "store-1", "sale").Return(false, nil)
		repo.EXPECT().CreatePage(gomock.Any(), gomock.Any()).Return(nil)

		page, err := svc.CreatePage(ctx, &domain.CreatePageRequest{StoreID: "store-1", Name: "Summer Sale", Slug: "Sale"})
		require.NoError(t, err)
		assert.Equal(t, "sale", page.Slug)
	})

	t.Run("collision appends a suffix", func(t *testing.T) {
		svc, repo := setupPageServiceTest(t, 5)

		gomock.InOrder(
			repo.EXPECT().SlugExists(gomock.Any(), "store-1", "home").Return(true, nil),
			repo.EXPECT().SlugExists(gomock.Any(), "store-1", "home-abc123").Return(false, nil),
			repo.EXPECT().CreatePage(gomock.Any(), gomock.Any()).Return(nil),
		)

		page, err := svc.CreatePage(ctx, &domain.CreatePageRequest{StoreID: "store-1", Name: "Home"})
		require.NoError(t, err)
		assert.Equal(t, "home-abc123", page.Slug)
	})

	t.Run("insert race is retried", func(t *testing.T) {
		svc, repo := setupPageServiceTest(t, 5)

		gomock.InOrder(
			repo.EXPECT().SlugExists(gomock.Any(), "store-1", "home").Return(false, nil),
			repo.EXPECT().CreatePage(gomock.Any(), gomock.Any()).Return(domain.ErrSlugTaken),
			repo.EXPECT().SlugExists(gomock.Any(), "store-1", "home-abc123").Return(false, nil),
			repo.EXPECT().CreatePage(gomock.Any(), gomock.Any()).Return(nil),
		)

		page, err := svc.CreatePage(ctx, &domain.CreatePageRequest{StoreID: "store-1", Name: "Home"})
		require.NoError(t, err)
		assert.Equal(t, "home-abc123", page.Slug)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		svc, repo := setupPageServiceTest(t, 3)

		repo.EXPECT().SlugExists(gomock.Any(), "store-1", gomock.Any()).Return(true, nil).Times(3)

		page, err := svc.CreatePage(ctx, &domain.CreatePageRequest{StoreID: "store-1", Name: "Home"})
		assert.Nil(t, page)
		assert.ErrorIs(t, err, domain.ErrSlugExhausted)
	})

	t.Run("invalid request", func(t *testing.T) {
		svc, _ := setupPageServiceTest(t, 5)

		_, err := svc.CreatePage(ctx, &domain.CreatePageRequest{StoreID: "store-1", Name: "  "})
		var validationErr domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("long names are truncated", func(t *testing.T) {
		svc, repo := setupPageServiceTest(t, 5)
		name := strings.Repeat("word ", 40)

		repo.EXPECT().SlugExists(gomock.Any(), "store-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, slug string) (bool, error) {
				assert.LessOrEqual(t, len(slug), maxBaseSlugLength)
				assert.False(t, strings.HasSuffix(slug, "-"))
				return false, nil
			})
		repo.EXPECT().CreatePage(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.CreatePage(ctx, &domain.CreatePageRequest{StoreID: "store-1", Name: name})
		require.NoError(t, err)
	})

	t.Run("repository errors are returned", func(t *testing.T) {
		svc, repo := setupPageServiceTest(t, 5)

		repo.EXPECT().SlugExists(gomock.Any(), "store-1", "home").Return(false, errors.New("db down"))

		_, err := svc.CreatePage(ctx, &domain.CreatePageRequest{StoreID: "store-1", Name: "Home"})
		assert.EqualError(t, err, "db down")
	})
}

func TestPageService_GetPage(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, repo := setupPageServiceTest(t, 5)
		repo.EXPECT().GetPage(gomock.Any(), "store-1", "page-1").Return(&domain.Page{ID: "page-1"}, nil)

		page, err := svc.GetPage(ctx, "store-1", "page-1")
		require.NoError(t, err)
		assert.Equal(t, "page-1", page.ID)
	})

	t.Run("not found is passed through", func(t *testing.T) {
		svc, repo := setupPageServiceTest(t, 5)
		repo.EXPECT().GetPage(gomock.Any(), "store-1", "page-1").Return(nil, &domain.ErrNotFound{Entity: "page", ID: "page-1"})

		_, err := svc.GetPage(ctx, "store-1", "page-1")
		var notFound *domain.ErrNotFound
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("missing id", func(t *testing.T) {
		svc, _ := setupPageServiceTest(t, 5)

		_, err := svc.GetPage(ctx, "store-1", "")
		var validationErr domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestPageService_ListPages(t *testing.T) {
	svc, repo := setupPageServiceTest(t, 5)
	pages := []*domain.Page{{ID: "page-1"}, {ID: "page-2"}}

	repo.EXPECT().ListPages(gomock.Any(), "store-1", 20, 0).Return(pages, 7, nil)

	resp, err := svc.ListPages(context.Background(), &domain.ListPagesRequest{StoreID: "store-1"})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.TotalCount)
	assert.Len(t, resp.Pages, 2)
}

func TestGenerateSlugSuffix(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		suffix := generateSlugSuffix()
		require.Len(t, suffix, slugSuffixLength)
		for _, r := range suffix {
			assert.Contains(t, slugSuffixAlphabet, string(r))
		}
		seen[suffix] = true
	}
	assert.Greater(t, len(seen), 45)
}
