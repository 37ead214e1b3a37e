package request

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/wp-hub/internal/modules/integrate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrInvalidJSON   = &ValidationError{Message: "Invalid JSON"}
	ErrMissingFields = &ValidationError{Message: "Missing required fields"}
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IntegrateImages is the body of POST /integrate-images.
type IntegrateImages struct {
	Content       string `json:"Content"`
	FeaturedImage string `json:"featured image"`
	Image1        string `json:"Image 1"`
	Image2        string `json:"Image 2"`
	APIKey        string `json:"Api_Key"`
}

// DecodeIntegrateImages accepts either one object or a list whose first element is used.
// An empty list decodes to an empty request.
func DecodeIntegrateImages(data []byte) (*IntegrateImages, error) {
	data = bytes.TrimSpace(data)
	ret := &IntegrateImages{}
	if len(data) > 0 && data[0] == '[' {
		var list []IntegrateImages
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, ErrInvalidJSON
		}
		if len(list) > 0 {
			*ret = list[0]
		}
		return ret, nil
	}
	if err := json.Unmarshal(data, ret); err != nil {
		return nil, ErrInvalidJSON
	}
	return ret, nil
}

// Valid requires everything except Image 2.
func (r *IntegrateImages) Valid() error {
	if r.Content == "" || r.FeaturedImage == "" || r.Image1 == "" || r.APIKey == "" {
		return ErrMissingFields
	}
	return nil
}

func (r *IntegrateImages) ToImages() integrate.Images {
	return integrate.Images{
		Content:  r.Content,
		Featured: r.FeaturedImage,
		Image1:   r.Image1,
		Image2:   r.Image2,
	}
}
