package consts

const (
	FreeImageUploadURL = "https://freeimage.host/api/1/upload"
	WordPressPostsPath = "/wp-json/wp/v2/posts"
	DefaultTimeout     = "30s"
)

type Strategy string

const (
	Structural   Strategy = "structural"
	Proportional Strategy = "proportional"
)

func (s Strategy) String() string {
	return string(s)
}

type ImageProvider string

const (
	FreeImage ImageProvider = "freeimage"
	AliOSS    ImageProvider = "ali_oss"
)

func (p ImageProvider) String() string {
	return string(p)
}

type PostStatus string

const (
	PostStatusDraft PostStatus = "draft"
)

func (s PostStatus) String() string {
	return string(s)
}
