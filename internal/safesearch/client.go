package safesearch

import (
	"context"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

// CredentialsEnv is read by the Google client libraries during default
// credential discovery.
const CredentialsEnv = "GOOGLE_APPLICATION_CREDENTIALS"

const userAgent = "infer-google-vision-safe-search/" + Version

// Annotator is the subset of vision.ImageAnnotatorClient the task uses.
type Annotator interface {
	AnnotateImage(ctx context.Context, req *visionpb.AnnotateImageRequest, opts ...gax.CallOption) (*visionpb.AnnotateImageResponse, error)
	Close() error
}

// ClientFactory constructs an Annotator after credentials are configured.
type ClientFactory func(ctx context.Context) (Annotator, error)

// NewVisionClient is the default ClientFactory.
func NewVisionClient(ctx context.Context) (Annotator, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, option.WithUserAgent(userAgent))
	if err != nil {
		return nil, err
	}
	return client, nil
}

func safeSearchRequest(jpeg []byte) *visionpb.AnnotateImageRequest {
	return &visionpb.AnnotateImageRequest{
		Image: &visionpb.Image{Content: jpeg},
		Features: []*visionpb.Feature{
			{Type: visionpb.Feature_SAFE_SEARCH_DETECTION},
		},
	}
}
