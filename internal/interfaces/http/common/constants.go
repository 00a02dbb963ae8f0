package common

const (
	// MaxPOIPhotoCount caps the number of photos a POI can carry.
	MaxPOIPhotoCount = 10
	// MaxDescriptionRunes limits POI description length to keep payloads sane.
	MaxDescriptionRunes = 2000
	// MaxRequestBody limits JSON request bodies for POI/suggestion endpoints.
	MaxRequestBody = 1 << 20
)
