package asset

import "errors"

var (
	// Pre-commit failures of a replace operation; they roll back fully.
	ErrUploadFailed = errors.New("asset: upload failed")
	ErrRecordFailed = errors.New("asset: record creation failed")

	// ErrLinkFailed means the owner could not be repointed after the new
	// asset was fully created. The new asset is left behind as a logged
	// orphan for the background sweep.
	ErrLinkFailed = errors.New("asset: link update failed")

	ErrNotFound   = errors.New("asset: not found")
	ErrValidation = errors.New("asset: invalid input")
)

// Storage-level sentinels the blob store maps its errors onto.
var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)
