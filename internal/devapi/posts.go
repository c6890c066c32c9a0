package devapi

// Post is the feed item shape served by GET /posts.
type Post struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image,omitempty"`
}

// SeedPosts is the fixed feed served to every authenticated user.
func SeedPosts() []Post {
	return []Post{
		{ID: "1", Title: "Welcome to gophfeed", Body: "Your session survives restarts. Try logging out and back in."},
		{ID: "2", Title: "Release notes", Body: "Profile screen now shows your initials.", Image: "https://picsum.photos/seed/gophfeed/600/300"},
		{ID: "3", Title: "Tip", Body: "Use refresh to re-fetch the feed."},
	}
}
