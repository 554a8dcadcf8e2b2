// cmd/client/cmd/note/notes_test.go
package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gophnotes/internal/app/client"
)

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "Идеи", displayTitle(client.Note{Title: "Идеи"}))
	assert.Equal(t, noTitle, displayTitle(client.Note{Title: ""}))
	assert.Equal(t, noTitle, displayTitle(client.Note{Title: "   "}))
}

func TestDisplayTime(t *testing.T) {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(3 * time.Hour)

	assert.Equal(t, updated, displayTime(client.Note{CreatedAt: created, UpdatedAt: updated}))
	assert.Equal(t, created, displayTime(client.Note{CreatedAt: created}))
}
