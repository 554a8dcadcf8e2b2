package note

import "gophnotes/internal/domain/note"

type listOutput struct {
	Body note.ListResponse
}

type createInput struct {
	Body request
}

type findInput struct {
	ID string `path:"id" doc:"Идентификатор заметки"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Идентификатор заметки"`
	Body request
}

type deleteInput struct {
	ID string `path:"id" doc:"Идентификатор заметки"`
}

type request struct {
	Title   string `json:"title" doc:"Заголовок заметки"`
	Content string `json:"content" doc:"Текст заметки"`
}

type noteOutput struct {
	Body noteResponse
}

type noteResponse struct {
	Status string     `json:"status"`
	Note   *note.Note `json:"note,omitempty"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
