package models

// Post is a feed item as returned by GET /posts.
type Post struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image,omitempty"`
}

// HasImage reports whether the post carries an attachment.
func (p Post) HasImage() bool {
	return p.Image != ""
}
