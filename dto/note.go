package dto

type AddNoteRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// EditNoteRequest keeps pointers so absent keys can be told apart from
// zero values.
type EditNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPinned *bool     `json:"isPinned"`
}

type PinNoteRequest struct {
	IsPinned bool `json:"isPinned"`
}

// SearchNotesRequest mirrors the axios-style body {"params": {"query": "..."}}.
type SearchNotesRequest struct {
	Params struct {
		Query string `json:"query"`
	} `json:"params"`
}
