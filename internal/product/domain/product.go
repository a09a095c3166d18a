package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

// Product is a schemaless catalog document. Callers supply whatever
// fields they like; the server only guarantees createdAt.
type Product map[string]interface{}

// CategoryAll is the sentinel filter value meaning "no category constraint".
const CategoryAll = "all"
