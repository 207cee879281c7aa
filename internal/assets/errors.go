package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)
