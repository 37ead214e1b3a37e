package request

import "github.com/reusedev/wp-hub/internal/modules/wordpress"

// Post is the body of POST /posttowordpress. Required fields are pointers so that
// presence is checked, not emptiness. An empty Status is left for wordpress.CreatePost to default.
type Post struct {
	Title    *string `json:"title" binding:"required"`
	Content  *string `json:"content" binding:"required"`
	URL      *string `json:"url" binding:"required"`
	Status   string  `json:"status"`
	Username *string `json:"username" binding:"required"`
	APIKey   *string `json:"apikey" binding:"required"`
}

func (p *Post) ToPostRequest() wordpress.PostRequest {
	return wordpress.PostRequest{
		Title:    deref(p.Title),
		Content:  deref(p.Content),
		SiteURL:  deref(p.URL),
		Status:   p.Status,
		Username: deref(p.Username),
		APIKey:   deref(p.APIKey),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
