package view

// AdminProductRow backs the admin inventory table.
type AdminProductRow struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Price     string     `json:"price"`
	Category  string     `json:"category"`
	ImageURL  string     `json:"image"`
	MainFocal FocalPoint `json:"mainFocal"`
}

// EditorSlot is a slot as echoed back to the admin client. File bytes never
// leave the server; PendingUpload signals a staged file instead.
type EditorSlot struct {
	ID            string     `json:"id"`
	URL           string     `json:"url"`
	PendingUpload bool       `json:"pendingUpload"`
	Focal         FocalPoint `json:"focal"`
}

// EditorState is the full editor snapshot the admin client renders from.
type EditorState struct {
	View        string       `json:"view"`
	Editing     bool         `json:"editing"`
	EditID      string       `json:"editId,omitempty"`
	Name        string       `json:"name"`
	Price       string       `json:"price"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Categories  []string     `json:"categories"`
	Slots       []EditorSlot `json:"slots"`
	Adjusting   int          `json:"adjusting"` // -1 when idle
	Dragging    int          `json:"dragging"`  // -1 when idle
	Dirty       bool         `json:"dirty"`
	Saving      bool         `json:"saving"`
}
