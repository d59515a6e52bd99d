package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagefix"
	"github.com/fwojciec/pagefix/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where FileStore is expected
	var _ pagefix.FileStore = &mock.FileStore{}
}

func TestFileStore_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteFileFn", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotContent string
		s := &mock.FileStore{
			WriteFileFn: func(_ context.Context, path, content string) error {
				gotPath, gotContent = path, content
				return nil
			},
		}

		err := s.WriteFile(context.Background(), "page.html", "<p>x</p>")

		require.NoError(t, err)
		assert.Equal(t, "page.html", gotPath)
		assert.Equal(t, "<p>x</p>", gotContent)
	})
}
