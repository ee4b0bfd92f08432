package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLibraryItem(t *testing.T) {
	s := emptyState()
	ids := &seqIDs{}

	p, err := AddLibraryItem(s, ids, LibraryTemplates, LibraryQuickAdd(LibraryDefaultCost), "拉伸 8")
	require.NoError(t, err)
	s.Apply(p)

	require.Len(t, s.Templates, 1)
	assert.Equal(t, Task{ID: "id-1", Title: "拉伸", Cost: 8, Type: TaskTemplate}, s.Templates[0])
	assert.Nil(t, p.Backlog)
}

func TestAddLibraryItem_EmptyTitleIsNoop(t *testing.T) {
	for _, kind := range []LibraryKind{LibraryTemplates, LibraryBacklog} {
		for _, input := range []string{"", "   ", "30"} {
			t.Run(string(kind)+"/"+input, func(t *testing.T) {
				s := NewDefaultState("2024-03-04")
				ids := &seqIDs{}

				p, err := AddLibraryItem(s, ids, kind, LibraryQuickAdd(LibraryDefaultCost), input)

				require.NoError(t, err)
				assert.True(t, p.IsEmpty())
				assert.Equal(t, 0, ids.n)
				assert.Len(t, s.Items(kind), len(NewDefaultState("2024-03-04").Items(kind)))
			})
		}
	}
}

func TestAddLibraryItem_UnknownKind(t *testing.T) {
	_, err := AddLibraryItem(emptyState(), &seqIDs{}, LibraryKind("plans"), LibraryQuickAdd(LibraryDefaultCost), "Walk 5")

	assert.ErrorIs(t, err, ErrUnknownLibrary)
}
