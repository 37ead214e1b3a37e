package response

type PostCreated struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	PostData any    `json:"post_data"`
}

func NewPostCreated(data any) *PostCreated {
	return &PostCreated{
		Status:   "success",
		Message:  "Post created successfully",
		PostData: data,
	}
}

type IntegrateImages struct {
	ModifiedContent string `json:"modified_content"`
}
