package transcript

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/mindmate/internal/models"
)

func texts(t *Transcript) []string {
	var out []string
	for _, e := range t.Entries() {
		out = append(out, e.Text)
	}
	return out
}

func TestAppend_PreservesInsertionOrder(t *testing.T) {
	tr := New()
	tr.Append("one", models.SenderUser)
	tr.Append("two", models.SenderAssistant)
	tr.Append("three", models.SenderUser)

	assert.Equal(t, []string{"one", "two", "three"}, texts(tr))
	assert.Equal(t, 3, tr.Len())

	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, "three", last.Text)
	assert.Equal(t, models.SenderUser, last.Sender)
}

func TestAppend_ReturnsDistinctHandles(t *testing.T) {
	tr := New()
	a := tr.Append("same", models.SenderUser)
	b := tr.Append("same", models.SenderUser)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, uuid.Nil, a)
}

func TestRemove_TargetsHandleNotPosition(t *testing.T) {
	tr := New()
	tr.Append("hello", models.SenderUser)
	first := tr.AppendPlaceholder()
	tr.Append("again", models.SenderUser)
	second := tr.AppendPlaceholder()

	// Removing the older placeholder must leave the newer one in place
	require.True(t, tr.Remove(first))
	assert.Equal(t, []string{"hello", "again", models.PlaceholderText}, texts(tr))

	e, ok := tr.Find(second)
	require.True(t, ok)
	assert.True(t, e.Placeholder)
	assert.Equal(t, 1, tr.Placeholders())
}

func TestRemove_UnknownHandle(t *testing.T) {
	tr := New()
	tr.Append("hello", models.SenderUser)
	before := tr.Revision()

	assert.False(t, tr.Remove(uuid.New()))
	assert.Equal(t, before, tr.Revision())
	assert.Equal(t, 1, tr.Len())
}

func TestRemove_Twice(t *testing.T) {
	tr := New()
	id := tr.AppendPlaceholder()

	assert.True(t, tr.Remove(id))
	assert.False(t, tr.Remove(id))
	assert.Equal(t, 0, tr.Len())
}

func TestPlaceholderText_IsNotAPlaceholder(t *testing.T) {
	tr := New()
	tr.Append(models.PlaceholderText, models.SenderUser)

	assert.Equal(t, 0, tr.Placeholders())
	_, ok := tr.LastFrom(models.SenderUser)
	assert.True(t, ok)
}

func TestLastFrom_SkipsPlaceholders(t *testing.T) {
	tr := New()
	tr.Append("reply", models.SenderAssistant)
	tr.Append("question", models.SenderUser)
	tr.AppendPlaceholder()

	e, ok := tr.LastFrom(models.SenderAssistant)
	require.True(t, ok)
	assert.Equal(t, "reply", e.Text)

	_, ok = New().LastFrom(models.SenderAssistant)
	assert.False(t, ok)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	tr := New()
	tr.Append("original", models.SenderUser)

	entries := tr.Entries()
	entries[0].Text = "mutated"

	assert.Equal(t, []string{"original"}, texts(tr))
}

func TestRevision_ChangesOnMutation(t *testing.T) {
	tr := New()
	r0 := tr.Revision()
	id := tr.AppendPlaceholder()
	r1 := tr.Revision()
	tr.Remove(id)
	r2 := tr.Revision()

	assert.Less(t, r0, r1)
	assert.Less(t, r1, r2)
}

func TestEntry_Message(t *testing.T) {
	e := Entry{Text: "hi", Sender: models.SenderAssistant}
	assert.Equal(t, models.Message{Text: "hi", Sender: models.SenderAssistant}, e.Message())
}
