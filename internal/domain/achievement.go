package domain

// Achievement is reserved for recording accomplishments. The journal keeps an
// achievements sequence so clients can rely on the field being present, but
// nothing populates it yet.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        Date   `json:"date"`
}
