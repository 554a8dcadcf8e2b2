package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestDetailForm_NewFormIsClean(t *testing.T) {
	f := NewDetailForm()

	assert.True(t, f.IsNew())
	assert.False(t, f.Dirty())
	assert.False(t, f.CanSave())
}

func TestDetailForm_EditMarksDirty(t *testing.T) {
	f := NewDetailForm()
	f.Load(&Note{ID: "n1", Title: "Заголовок", Content: "Текст"})

	assert.False(t, f.Dirty())

	f.SetTitle("Другой заголовок")
	assert.True(t, f.Dirty())
	assert.True(t, f.CanSave())

	// Возврат к исходному значению снимает флаг
	f.SetTitle("Заголовок")
	assert.False(t, f.Dirty())
}

func TestDetailForm_LoadDiscardsEdits(t *testing.T) {
	f := NewDetailForm()
	f.Load(&Note{ID: "n1", Title: "Первая", Content: "a"})
	f.SetContent("несохраненная правка")

	// Переключение на другую заметку сбрасывает правки
	f.Load(&Note{ID: "n2", Title: "Вторая", Content: "b"})

	assert.Equal(t, "n2", f.NoteID())
	assert.Equal(t, "b", f.Content())
	assert.False(t, f.Dirty())
}

func TestDetailForm_LoadNilSwitchesToNewMode(t *testing.T) {
	f := NewDetailForm()
	f.Load(&Note{ID: "n1", Title: "Первая", Content: "a"})

	f.Load(nil)

	assert.True(t, f.IsNew())
	assert.Equal(t, "", f.Title())
	assert.Equal(t, "", f.Content())
}

func TestDetailForm_SaveNewCreates(t *testing.T) {
	api := new(MockNotesAPI)
	created := &Note{ID: "n1", Title: "Новая", Content: "текст"}
	api.On("CreateNote", mock.Anything, "Новая", "текст").Return(created, nil)

	ws := NewWorkspace(api, slog.Default())

	f := NewDetailForm()
	f.SetTitle("Новая")
	f.SetContent("текст")
	require.True(t, f.CanSave())

	saved, err := f.Save(context.Background(), ws)
	require.NoError(t, err)

	assert.Equal(t, "n1", saved.ID)
	assert.False(t, f.IsNew())
	assert.False(t, f.Dirty())
	assert.Equal(t, "n1", ws.Selected().ID)
}

func TestDetailForm_SaveExistingUpdates(t *testing.T) {
	api := new(MockNotesAPI)
	api.On("ListNotes", mock.Anything).Return([]Note{{ID: "n1", Title: "Старая", Content: "a"}}, nil)
	updated := &Note{ID: "n1", Title: "Новая", Content: "a"}
	api.On("UpdateNote", mock.Anything, "n1", "Новая", "a").Return(updated, nil)

	ws := NewWorkspace(api, slog.Default())
	require.NoError(t, ws.Refresh(context.Background()))

	f := NewDetailForm()
	f.Load(ws.Selected())
	f.SetTitle("Новая")

	saved, err := f.Save(context.Background(), ws)
	require.NoError(t, err)

	assert.Equal(t, "Новая", saved.Title)
	assert.False(t, f.Dirty())
	assert.Equal(t, "Новая", ws.Notes()[0].Title)
}

func TestDetailForm_SaveErrorKeepsEdits(t *testing.T) {
	api := new(MockNotesAPI)
	api.On("CreateNote", mock.Anything, "Новая", "текст").Return(nil, errors.New("boom"))

	ws := NewWorkspace(api, slog.Default())

	f := NewDetailForm()
	f.SetTitle("Новая")
	f.SetContent("текст")

	_, err := f.Save(context.Background(), ws)
	assert.Error(t, err)

	// Правки не потеряны, можно повторить сохранение
	assert.True(t, f.Dirty())
	assert.Equal(t, "Новая", f.Title())
}
